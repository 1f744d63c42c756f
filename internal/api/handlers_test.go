package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"tripmate-backend-go/internal/core"
	"tripmate-backend-go/internal/models"
)

type stubMembershipService struct {
	verification models.AccessVerification
	members      []models.MemberInfo
	listErr      error
}

func (s *stubMembershipService) CheckAccess(_ context.Context, _, _ string, _ models.PermissionTier) models.AccessVerification {
	return s.verification
}

func (s *stubMembershipService) ListMembers(_ context.Context, _, _ string) ([]models.MemberInfo, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.members, nil
}

type stubMessageService struct {
	message *models.Message
	list    []*models.Message
	err     error
}

func (s *stubMessageService) SendMessage(_ context.Context, vacationID, userID string, req models.SendMessageRequest) (*models.Message, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.message, nil
}

func (s *stubMessageService) ListMessages(_ context.Context, _, _ string, _ map[string]string) ([]*models.Message, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.list, nil
}

func (s *stubMessageService) EditMessage(_ context.Context, _, _, _ string, _ models.EditMessageRequest) (*models.Message, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.message, nil
}

func (s *stubMessageService) DeleteMessage(_ context.Context, _, _, _ string) error {
	return s.err
}

// newTestRouter wires the handlers behind a stand-in auth middleware that
// injects the given user ID, matching what the token middleware does.
func newTestRouter(userID string, ms core.MembershipService, msgs core.MessageService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if userID != "" {
			c.Set("userID", userID)
		}
		c.Next()
	})

	accessHandler := NewAccessHandler(ms)
	messageHandler := NewMessageHandler(msgs)

	group := router.Group("/api/v1/vacations/:vacationId")
	group.GET("/access", accessHandler.CheckAccess)
	group.GET("/members", accessHandler.ListMembers)
	group.POST("/messages", messageHandler.SendMessage)
	group.GET("/messages", messageHandler.ListMessages)
	group.PUT("/messages/:messageId", messageHandler.EditMessage)
	group.DELETE("/messages/:messageId", messageHandler.DeleteMessage)
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestCheckAccess_Granted(t *testing.T) {
	ms := &stubMembershipService{verification: models.AccessVerification{
		HasAccess: true,
		UserRole:  models.RoleEditor,
		Permissions: &models.DerivedPermissions{
			CanView: true, CanEdit: true,
		},
	}}
	router := newTestRouter("user123456", ms, &stubMessageService{})

	rec := doRequest(router, http.MethodGet, "/api/v1/vacations/vac1234567/access?permission=edit", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body models.AccessVerification
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.True(t, body.HasAccess)
	require.Equal(t, models.RoleEditor, body.UserRole)
}

func TestCheckAccess_DenialStatusMapping(t *testing.T) {
	cases := []struct {
		code models.DenialCode
		want int
	}{
		{models.DenialInvalidInput, http.StatusBadRequest},
		{models.DenialInvalidOperation, http.StatusBadRequest},
		{models.DenialVacationNotFound, http.StatusNotFound},
		{models.DenialNotMember, http.StatusForbidden},
		{models.DenialInsufficientRole, http.StatusForbidden},
		{models.DenialNotAuthor, http.StatusForbidden},
		{models.DenialVerificationFailed, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		ms := &stubMembershipService{verification: models.AccessVerification{
			HasAccess: false,
			Code:      tc.code,
			Reason:    "denied",
		}}
		router := newTestRouter("user123456", ms, &stubMessageService{})

		rec := doRequest(router, http.MethodGet, "/api/v1/vacations/vac1234567/access", "")
		require.Equal(t, tc.want, rec.Code, "denial code %q", tc.code)
	}
}

func TestCheckAccess_MissingUserIDIsUnauthorized(t *testing.T) {
	router := newTestRouter("", &stubMembershipService{}, &stubMessageService{})

	rec := doRequest(router, http.MethodGet, "/api/v1/vacations/vac1234567/access", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListMembers(t *testing.T) {
	ms := &stubMembershipService{members: []models.MemberInfo{
		{UserID: "owner12345", Role: models.RoleOwner},
		{UserID: "viewer1234", Role: models.RoleViewer},
	}}
	router := newTestRouter("user123456", ms, &stubMessageService{})

	rec := doRequest(router, http.MethodGet, "/api/v1/vacations/vac1234567/members", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body MemberListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, 2, body.Count)
	require.Equal(t, "vac1234567", body.VacationID)
}

func TestListMembers_DeniedMapsToForbidden(t *testing.T) {
	ms := &stubMembershipService{listErr: &core.AccessDeniedError{
		Code:   models.DenialNotMember,
		Reason: "User is not a member of this vacation",
	}}
	router := newTestRouter("user123456", ms, &stubMessageService{})

	rec := doRequest(router, http.MethodGet, "/api/v1/vacations/vac1234567/members", "")
	require.Equal(t, http.StatusForbidden, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "User is not a member of this vacation", body.Error)
}

func TestSendMessage_Created(t *testing.T) {
	msgs := &stubMessageService{message: &models.Message{
		ID:       "msg-1",
		AuthorID: "user123456",
		Type:     models.MessageTypeText,
		Content:  "hello",
	}}
	router := newTestRouter("user123456", &stubMembershipService{}, msgs)

	rec := doRequest(router, http.MethodPost, "/api/v1/vacations/vac1234567/messages",
		`{"type":"text","content":"hello"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body models.Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "msg-1", body.ID)
}

func TestSendMessage_MalformedPayload(t *testing.T) {
	router := newTestRouter("user123456", &stubMembershipService{}, &stubMessageService{})

	rec := doRequest(router, http.MethodPost, "/api/v1/vacations/vac1234567/messages", `{"type":}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendMessage_InvalidInputMapsToBadRequest(t *testing.T) {
	msgs := &stubMessageService{err: core.ErrInvalidInput}
	router := newTestRouter("user123456", &stubMembershipService{}, msgs)

	rec := doRequest(router, http.MethodPost, "/api/v1/vacations/vac1234567/messages",
		`{"type":"gif","content":"hello"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEditMessage_NotFoundMapsTo404(t *testing.T) {
	msgs := &stubMessageService{err: core.ErrMessageNotFound}
	router := newTestRouter("user123456", &stubMembershipService{}, msgs)

	rec := doRequest(router, http.MethodPut, "/api/v1/vacations/vac1234567/messages/msg-9",
		`{"content":"updated"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteMessage_NotAuthorMapsToForbidden(t *testing.T) {
	msgs := &stubMessageService{err: &core.AccessDeniedError{
		Code:   models.DenialNotAuthor,
		Reason: "You can only delete your own messages",
	}}
	router := newTestRouter("user123456", &stubMembershipService{}, msgs)

	rec := doRequest(router, http.MethodDelete, "/api/v1/vacations/vac1234567/messages/msg-9", "")
	require.Equal(t, http.StatusForbidden, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "You can only delete your own messages", body.Error)
}

func TestDeleteMessage_Success(t *testing.T) {
	router := newTestRouter("user123456", &stubMembershipService{}, &stubMessageService{})

	rec := doRequest(router, http.MethodDelete, "/api/v1/vacations/vac1234567/messages/msg-9", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body SuccessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "Message deleted successfully", body.Message)
}

func TestUnexpectedErrorMapsTo500(t *testing.T) {
	msgs := &stubMessageService{err: context.DeadlineExceeded}
	router := newTestRouter("user123456", &stubMembershipService{}, msgs)

	rec := doRequest(router, http.MethodGet, "/api/v1/vacations/vac1234567/messages", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
