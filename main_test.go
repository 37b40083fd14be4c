package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"join_now/be/biz/config"
	redisdb "join_now/be/biz/db/redis"
	"join_now/be/biz/model/domain"
	"join_now/be/biz/model/dto"
	"join_now/be/biz/model/errs"
	accountsvc "join_now/be/biz/service/account"

	"github.com/alicebob/miniredis/v2"
	"github.com/bytedance/mockey"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/test/assert"
	"github.com/cloudwego/hertz/pkg/common/ut"
)

var testEngine *server.Hertz

func TestMain(t *testing.M) {
	mr, err := miniredis.Run()
	if err != nil {
		panic(err)
	}
	dir, err := os.MkdirTemp("", "join_now_test_conf_*")
	if err != nil {
		panic(err)
	}
	confPath := filepath.Join(dir, "deploy.yml")
	conf := []byte(`mysql:
  db_name: ""
  ip: "127.0.0.1"
  port: 3306
  username: ""
  password: ""

redis:
  ip: "` + mr.Host() + `"
  port: ` + mr.Port() + `
  password: ""
  db: 0

cors:
  allow_origins:
    - "*"
  allow_methods:
    - "GET"
    - "POST"
  allow_headers:
    - "Origin"
  allow_credentials: true
  max_age: 600

session:
  store_prefix: "anon_session:"
  name: "anon_session_id"
  path: "/"
  domain: ""
  max_age: 604800
  secure: false
  http_only: true
  same_site: "Strict"

rate_limit:
  - path: "/api/v1/account/signup"
    window_seconds: 1
    limit: 100
    has_session: false
  - path: "/ping"
    window_seconds: 1
    limit: 100
    has_session: false

signup_protection:
  block_minutes: 10
`)
	if err := os.WriteFile(confPath, conf, 0600); err != nil {
		panic(err)
	}
	config.Init(confPath)
	redisdb.Init()

	testEngine = NewEngine()
	os.Exit(t.Run())
}

func newTestServer(t *testing.T) *server.Hertz {
	t.Helper()
	redisdb.GetRedisClient().FlushAll(context.Background())
	return testEngine
}

func perform(h *server.Hertz, method, url string, body string, headers ...ut.Header) *ut.ResponseRecorder {
	var b *ut.Body
	if body != "" {
		b = &ut.Body{Body: bytes.NewBufferString(body), Len: len(body)}
	}
	allHeaders := append([]ut.Header{{Key: "Content-Type", Value: "application/json"}}, headers...)
	return ut.PerformRequest(h.Engine, method, url, b, allHeaders...)
}

func decodeErrorResp(t *testing.T, respBody []byte) dto.ErrorResp {
	t.Helper()
	var r dto.ErrorResp
	err := json.Unmarshal(respBody, &r)
	assert.Nil(t, err)
	return r
}

func TestPing(t *testing.T) {
	h := newTestServer(t)

	w := perform(h, http.MethodGet, "/ping", "")
	resp := w.Result()
	assert.DeepEqual(t, http.StatusOK, resp.StatusCode())

	var r dto.PingResp
	assert.Nil(t, json.Unmarshal(resp.Body(), &r))
	assert.DeepEqual(t, "pong", r.Message)
}

func TestSignup_ParamError(t *testing.T) {
	h := newTestServer(t)

	w := perform(h, http.MethodPost, "/api/v1/account/signup", "{")
	resp := w.Result()
	assert.DeepEqual(t, http.StatusBadRequest, resp.StatusCode())

	r := decodeErrorResp(t, resp.Body())
	assert.DeepEqual(t, int(errs.ParamError.Code()), r.Code)
}

func TestSignup_MissingName(t *testing.T) {
	h := newTestServer(t)

	body := `{"email":"a@mail.com","password":"p","passwordConfirmation":"p"}`
	w := perform(h, http.MethodPost, "/api/v1/account/signup", body)
	resp := w.Result()
	assert.DeepEqual(t, http.StatusBadRequest, resp.StatusCode())

	r := decodeErrorResp(t, resp.Body())
	assert.DeepEqual(t, int(errs.MissingParamErr.Code()), r.Code)
	assert.DeepEqual(t, "missing param: name", r.Message)
}

func TestSignup_PasswordConfirmationMismatch(t *testing.T) {
	h := newTestServer(t)

	body := `{"name":"n","email":"e@mail.com","password":"p","passwordConfirmation":"q"}`
	w := perform(h, http.MethodPost, "/api/v1/account/signup", body)
	resp := w.Result()
	assert.DeepEqual(t, http.StatusBadRequest, resp.StatusCode())

	r := decodeErrorResp(t, resp.Body())
	assert.DeepEqual(t, int(errs.InvalidParamErr.Code()), r.Code)
	assert.DeepEqual(t, "invalid param: passwordConfirmation", r.Message)
}

func TestSignup_InvalidEmail(t *testing.T) {
	h := newTestServer(t)

	body := `{"name":"n","email":"not-an-email","password":"p","passwordConfirmation":"p"}`
	w := perform(h, http.MethodPost, "/api/v1/account/signup", body)
	resp := w.Result()
	assert.DeepEqual(t, http.StatusBadRequest, resp.StatusCode())

	r := decodeErrorResp(t, resp.Body())
	assert.DeepEqual(t, int(errs.InvalidParamErr.Code()), r.Code)
	assert.DeepEqual(t, "invalid param: email", r.Message)
}

func TestSignup_SuccessAndProtection(t *testing.T) {
	h := newTestServer(t)

	patchCtor := mockey.Mock(accountsvc.NewDefault).Return(&accountsvc.Service{}).Build()
	defer patchCtor.UnPatch()

	created := &domain.Account{
		AccountID: "1",
		Name:      "n",
		Email:     "e@mail.com",
		Password:  "hashed",
	}
	patchAdd := mockey.Mock((*accountsvc.Service).Add).Return(created, nil).Build()
	defer patchAdd.UnPatch()

	body := `{"name":"n","email":"e@mail.com","password":"p","passwordConfirmation":"p"}`
	w := perform(h, http.MethodPost, "/api/v1/account/signup", body)
	resp := w.Result()
	assert.DeepEqual(t, http.StatusOK, resp.StatusCode())

	var got domain.Account
	assert.Nil(t, json.Unmarshal(resp.Body(), &got))
	assert.DeepEqual(t, "1", got.AccountID)
	assert.DeepEqual(t, "n", got.Name)
	assert.DeepEqual(t, "e@mail.com", got.Email)
	assert.DeepEqual(t, "hashed", got.Password)

	// same client signing up again is blocked for a while
	w2 := perform(h, http.MethodPost, "/api/v1/account/signup", body)
	resp2 := w2.Result()
	assert.DeepEqual(t, http.StatusForbidden, resp2.StatusCode())

	r2 := decodeErrorResp(t, resp2.Body())
	assert.DeepEqual(t, int(errs.RequestBlocked.Code()), r2.Code)
}

func TestSignup_CreatorError(t *testing.T) {
	h := newTestServer(t)

	patchCtor := mockey.Mock(accountsvc.NewDefault).Return(&accountsvc.Service{}).Build()
	defer patchCtor.UnPatch()

	patchAdd := mockey.Mock((*accountsvc.Service).Add).
		Return((*domain.Account)(nil), errors.New("db down")).
		Build()
	defer patchAdd.UnPatch()

	body := `{"name":"n","email":"e@mail.com","password":"p","passwordConfirmation":"p"}`
	w := perform(h, http.MethodPost, "/api/v1/account/signup", body)
	resp := w.Result()
	assert.DeepEqual(t, http.StatusInternalServerError, resp.StatusCode())

	r := decodeErrorResp(t, resp.Body())
	assert.DeepEqual(t, int(errs.ServerError.Code()), r.Code)
	assert.DeepEqual(t, errs.ServerError.Msg(), r.Message)
}
