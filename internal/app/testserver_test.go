package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"sync"
	"testing"
	"time"

	"axas_backend/internal/config"
	"axas_backend/internal/email"
	"axas_backend/internal/storage"
	"axas_backend/internal/testutil"
	"axas_backend/pkg/envelope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var serverNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

// smsCode - код, который "присылает" фейковый SMS-провайдер
const smsCode = "1234"

type fakeSMS struct {
	mu    sync.Mutex
	calls []string
}

func (f *fakeSMS) Send(ctx context.Context, to string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, to)
	return smsCode, nil
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []*email.Email
}

func (f *fakeMailer) Send(ctx context.Context, e *email.Email) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, e)
	return nil
}

func (f *fakeMailer) Validate() error { return nil }

// apiResponse - конверт ответа с ленивым data
type apiResponse struct {
	Status      int              `json:"status"`
	Data        json.RawMessage  `json:"data"`
	Message     *string          `json:"message"`
	Errors      []envelope.Error `json:"errors"`
	Description *string          `json:"description"`
}

func (r *apiResponse) decode(t *testing.T, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.Data, v), "data: %s", string(r.Data))
}

type TestServer struct {
	Server  *httptest.Server
	DB      *gorm.DB
	Storage storage.Storage
	SMS     *fakeSMS
	Mailer  *fakeMailer
}

// NewTestServer поднимает роутер на in-memory SQLite с фейковыми провайдерами
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewTestDB(t)

	cfg := config.Default()
	cfg.Verification.BcryptCost = bcrypt.MinCost
	cfg.Storage.BasePath = t.TempDir()
	cfg.Storage.BaseURL = "/files"

	local, err := storage.NewStorage(storageConfig(cfg))
	require.NoError(t, err)

	ts := &TestServer{DB: db, Storage: local, SMS: &fakeSMS{}, Mailer: &fakeMailer{}}
	router := SetupRouter(cfg, db, Deps{
		SMS:     ts.SMS,
		Email:   ts.Mailer,
		Storage: local,
		Clock:   testutil.FixedClock(serverNow),
	})
	ts.Server = httptest.NewServer(router)
	t.Cleanup(ts.Server.Close)
	return ts
}

func (ts *TestServer) do(t *testing.T, req *http.Request, token string) (*http.Response, *apiResponse) {
	t.Helper()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := ts.Server.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	var body apiResponse
	require.NoError(t, json.Unmarshal(raw, &body), "body: %s", string(raw))
	return res, &body
}

// SendRequest отправляет JSON-запрос; body == nil - без тела
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}, headers ...string) (*http.Response, *apiResponse) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	return ts.do(t, req, token)
}

// SendImage отправляет multipart-форму с файлом в поле image
func (ts *TestServer) SendImage(t *testing.T, method, path, token, filename, contentType string, content []byte) (*http.Response, *apiResponse) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(method, ts.Server.URL+path, &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return ts.do(t, req, token)
}

type signInData struct {
	User struct {
		ID  uint    `json:"id"`
		Tel *string `json:"tel"`
	} `json:"user"`
	Tokens struct {
		Access struct {
			Value    string `json:"value"`
			ExpireAt int64  `json:"expire_at"`
		} `json:"access"`
		Refresh struct {
			Value    string `json:"value"`
			ExpireAt int64  `json:"expire_at"`
		} `json:"refresh"`
	} `json:"tokens"`
}

// SignIn запрашивает код и входит; возвращает access-токен и id пользователя
func (ts *TestServer) SignIn(t *testing.T, tel string) (string, uint) {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/tels/verify/", "", map[string]string{"tel": tel})
	require.Equal(t, http.StatusOK, res.StatusCode, "verify: %s", string(body.Data))
	var issued struct {
		Code string `json:"code"`
	}
	body.decode(t, &issued)

	res, body = ts.SendRequest(t, http.MethodPost, "/siw/tel/", "", map[string]string{"tel": tel, "code": issued.Code})
	require.Equal(t, http.StatusOK, res.StatusCode, "siw: %+v", body.Errors)

	var data signInData
	body.decode(t, &data)
	return data.Tokens.Access.Value, data.User.ID
}

// flatBody - тело создания квартиры со всеми обязательными полями
func flatBody(title string, hasBalcony bool) map[string]interface{} {
	return map[string]interface{}{
		"title":           title,
		"room_count":      2,
		"address":         "Krasnodar, Krasnaya st. 1",
		"lat":             45.035,
		"lon":             38.975,
		"area":            54.5,
		"price_short":     2500,
		"price_long":      2000,
		"guest_count":     4,
		"bed_count":       2,
		"restroom_count":  1,
		"has_balcony":     hasBalcony,
		"children":        true,
		"animals":         false,
		"washing_machine": true,
		"fridge":          true,
		"tv":              true,
		"dishwasher":      false,
		"air_conditioner": true,
		"smoking":         false,
		"noise":           false,
		"party":           false,
	}
}
