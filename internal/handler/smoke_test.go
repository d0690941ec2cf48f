package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consulado_admin_server/internal/dto/request"
	"consulado_admin_server/internal/dto/respond"
	"consulado_admin_server/internal/handler"
	"consulado_admin_server/internal/router"
	"consulado_admin_server/internal/service"
	"consulado_admin_server/pkg/enum/member/dues_status_enum"
	"consulado_admin_server/pkg/errorx"
	"consulado_admin_server/pkg/util/jwt"
)

type stubAuthService struct{}

type stubMemberService struct{}

type stubChapterService struct{}

type stubTransferService struct{}

func (s stubAuthService) Login(req request.LoginRequest) (*respond.LoginRespond, error) {
	return &respond.LoginRespond{Uuid: "A_TEST", Username: req.Username}, nil
}
func (s stubAuthService) RefreshToken(req request.RefreshTokenRequest) (*respond.RefreshTokenRespond, error) {
	return &respond.RefreshTokenRespond{}, nil
}

func (s stubMemberService) GetMemberList(req request.GetMemberListRequest) (*respond.GetMemberListRespond, error) {
	return &respond.GetMemberListRespond{
		Total: 1,
		Members: []respond.MemberSummaryRespond{
			{Uuid: "S1", Number: "1001", FullName: "Ana García", DuesStatus: dues_status_enum.ALDIA},
		},
	}, nil
}
func (s stubMemberService) GetMemberInfo(uuid string) (*respond.GetMemberInfoRespond, error) {
	if uuid == "S404" {
		return nil, errorx.ErrMemberNotExist
	}
	return &respond.GetMemberInfoRespond{Uuid: uuid, Number: "1001"}, nil
}
func (s stubMemberService) CreateMember(req request.CreateMemberRequest) (*respond.GetMemberInfoRespond, error) {
	return &respond.GetMemberInfoRespond{Number: req.Number}, nil
}
func (s stubMemberService) UpdateMember(req request.UpdateMemberRequest) error { return nil }
func (s stubMemberService) DeleteMembers(uuidList []string) error              { return nil }
func (s stubMemberService) CheckMemberNumber(req request.CheckMemberNumberRequest) (*respond.CheckMemberNumberRespond, error) {
	return &respond.CheckMemberNumberRespond{Result: respond.NumberValid}, nil
}
func (s stubMemberService) ChangeMemberNumber(req request.ChangeMemberNumberRequest) error {
	return nil
}
func (s stubMemberService) SendDuesReminder(uuid string) error { return nil }
func (s stubMemberService) SetPhotoURL(uuid, url string) error { return nil }

func (s stubChapterService) GetChapterList() ([]respond.ChapterRespond, error) {
	return []respond.ChapterRespond{{Uuid: "C1", Name: "Consulado Madrid"}}, nil
}
func (s stubChapterService) GetChapterInfo(uuid string) (*respond.ChapterRespond, error) {
	return &respond.ChapterRespond{Uuid: uuid}, nil
}
func (s stubChapterService) CreateChapter(req request.CreateChapterRequest) (*respond.ChapterRespond, error) {
	return &respond.ChapterRespond{Name: req.Name}, nil
}
func (s stubChapterService) UpdateChapter(req request.UpdateChapterRequest) error { return nil }
func (s stubChapterService) DeleteChapter(req request.DeleteChapterRequest) error { return nil }
func (s stubChapterService) SetImageURL(uuid, field, url string) error            { return nil }

func (s stubTransferService) CreateTransfer(req request.CreateTransferRequest) (*respond.TransferRespond, error) {
	return &respond.TransferRespond{Uuid: "T_NEW", MemberUuid: req.MemberUuid}, nil
}
func (s stubTransferService) UpdateTransferStatus(req request.UpdateTransferStatusRequest) error {
	if req.Uuid == "T_done" {
		return errorx.Newf(errorx.CodeInvalidTransition, "申请已处于终态 Approved，不可再流转")
	}
	return nil
}
func (s stubTransferService) GetTransferList(chapterUuid string) (*respond.GetTransferListRespond, error) {
	return &respond.GetTransferListRespond{}, nil
}
func (s stubTransferService) GetAllTransfers() ([]respond.TransferRespond, error) {
	return []respond.TransferRespond{}, nil
}

// envelope 统一响应结构的测试侧解码形态
type envelope struct {
	Code int             `json:"code"`
	Msg  json.RawMessage `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func newSmokeServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	jwt.Init("test-secret", 15, 168)
	require.NoError(t, handler.InitTrans("es"))

	svcs := &service.Services{
		Auth:     stubAuthService{},
		Member:   stubMemberService{},
		Chapter:  stubChapterService{},
		Transfer: stubTransferService{},
	}
	engine := gin.New()
	router.RegisterRoutes(engine, handler.NewHandlers(svcs))

	server := httptest.NewServer(engine)
	t.Cleanup(server.Close)

	accessToken, err := jwt.GenerateAccessToken("A_TEST")
	require.NoError(t, err)
	return server, "Bearer " + accessToken
}

func doReq(t *testing.T, method, url string, body io.Reader, authHeader string) (*http.Response, envelope) {
	t.Helper()
	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func mustJSON(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func TestMemberListSmoke(t *testing.T) {
	server, auth := newSmokeServer(t)

	resp, env := doReq(t, http.MethodPost, server.URL+"/member/getMemberList",
		mustJSON(t, map[string]any{"chapter_uuid": "all"}), auth)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, errorx.CodeSuccess, env.Code)

	var data respond.GetMemberListRespond
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 1, data.Total)
	require.Len(t, data.Members, 1)
	assert.Equal(t, "1001", data.Members[0].Number)
}

func TestErrorEnvelope(t *testing.T) {
	server, auth := newSmokeServer(t)

	// 业务错误：错误码和消息透传
	_, env := doReq(t, http.MethodGet, server.URL+"/member/getMemberInfo?uuid=S404", nil, auth)
	assert.Equal(t, errorx.CodeMemberNotExist, env.Code)

	// 缺少必要参数
	_, env = doReq(t, http.MethodGet, server.URL+"/member/getMemberInfo", nil, auth)
	assert.Equal(t, errorx.CodeInvalidParam, env.Code)
}

func TestTransferTransitionSmoke(t *testing.T) {
	server, auth := newSmokeServer(t)

	// 正常流转
	_, env := doReq(t, http.MethodPost, server.URL+"/transfer/updateTransferStatus",
		mustJSON(t, map[string]any{"uuid": "T1", "status": "Approved"}), auth)
	assert.Equal(t, errorx.CodeSuccess, env.Code)

	// 终态不可再流转
	_, env = doReq(t, http.MethodPost, server.URL+"/transfer/updateTransferStatus",
		mustJSON(t, map[string]any{"uuid": "T_done", "status": "Rejected"}), auth)
	assert.Equal(t, errorx.CodeInvalidTransition, env.Code)

	// 目标状态不在枚举内：validator 拦截并返回按字段翻译的提示
	_, env = doReq(t, http.MethodPost, server.URL+"/transfer/updateTransferStatus",
		mustJSON(t, map[string]any{"uuid": "T1", "status": "Pendiente"}), auth)
	assert.Equal(t, errorx.CodeInvalidParam, env.Code)
	var fieldErrs map[string]string
	require.NoError(t, json.Unmarshal(env.Msg, &fieldErrs))
	assert.Contains(t, fieldErrs, "status")
}

func TestAuthGuard(t *testing.T) {
	server, auth := newSmokeServer(t)

	// 受保护接口：无 Token 拒绝
	resp, env := doReq(t, http.MethodPost, server.URL+"/member/getMemberList",
		mustJSON(t, map[string]any{"chapter_uuid": "all"}), "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, errorx.CodeUnauthorized, env.Code)

	// 公共接口：登录不需要 Token
	resp, env = doReq(t, http.MethodPost, server.URL+"/auth/login",
		mustJSON(t, map[string]any{"username": "admin", "password": "secret123"}), "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, errorx.CodeSuccess, env.Code)

	// 受保护的 GET 接口带 Token 正常放行
	_, env = doReq(t, http.MethodGet, server.URL+"/chapter/getChapterList", nil, auth)
	assert.Equal(t, errorx.CodeSuccess, env.Code)
}
