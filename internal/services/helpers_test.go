package services

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"sync"
	"testing"
	"time"

	"axas_backend/internal/email"
	"axas_backend/internal/repositories"
	"axas_backend/internal/storage"
	"axas_backend/internal/throttle"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

// fakeSMS возвращает заранее заданный код и считает вызовы
type fakeSMS struct {
	mu    sync.Mutex
	code  string
	err   error
	calls []string
}

func (f *fakeSMS) Send(ctx context.Context, to string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, to)
	if f.err != nil {
		return "", f.err
	}
	return f.code, nil
}

// fakeMailer запоминает отправленные письма
type fakeMailer struct {
	mu   sync.Mutex
	sent []*email.Email
	err  error
}

func (f *fakeMailer) Send(ctx context.Context, e *email.Email) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, e)
	return nil
}

func (f *fakeMailer) Validate() error { return nil }

// fakeLimiter разрешает первые allow событий
type fakeLimiter struct {
	allow int
	count int
	err   error
}

func (f *fakeLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	f.count++
	return f.count <= f.allow, nil
}

var _ throttle.Limiter = (*fakeLimiter)(nil)

var errProviderDown = errors.New("provider is down")

// clock - управляемое время для тестов
type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func (c *clock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type testEnv struct {
	clock        *clock
	sms          *fakeSMS
	mailer       *fakeMailer
	limiter      *fakeLimiter
	storage      storage.Storage
	verification VerificationService
	tokens       TokenService
	devices      DeviceService
	uploads      UploadService
	profiles     ProfileService
	flats        FlatService
	rents        RentService
	notices      NotificationService
	auth         AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	c := &clock{now: testNow}
	env := &testEnv{
		clock:   c,
		sms:     &fakeSMS{code: "1234"},
		mailer:  &fakeMailer{},
		limiter: &fakeLimiter{allow: 100},
	}

	local, err := storage.NewLocalStorage(storage.Config{BasePath: t.TempDir(), BaseURL: "/files"})
	require.NoError(t, err)
	env.storage = local

	userRepo := repositories.NewUserRepository()
	codeRepo := repositories.NewVerificationCodeRepository()
	tokenRepo := repositories.NewTokenRepository()
	pairRepo := repositories.NewTokenPairRepository()
	deviceRepo := repositories.NewDeviceRepository()
	notificationRepo := repositories.NewNotificationRepository()
	flatRepo := repositories.NewFlatRepository()
	pictureRepo := repositories.NewFlatPictureRepository()
	rentRepo := repositories.NewRentRepository()

	env.verification = NewVerificationService(codeRepo, env.sms, env.mailer, env.limiter, VerificationConfig{
		TTL:           30 * time.Minute,
		Whitelist:     []string{"79184167161", "+79183657351"},
		WhitelistCode: "8085",
		BcryptCost:    bcrypt.MinCost,
	}, c.Now)
	env.tokens = NewTokenService(tokenRepo, pairRepo, TokenConfig{
		Length:     64,
		AccessTTL:  12 * time.Hour,
		RefreshTTL: 60 * 24 * time.Hour,
	}, c.Now)
	env.devices = NewDeviceService(deviceRepo)
	env.uploads = NewUploadService(env.storage, UploadConfig{MaxFileSize: 1 << 20}, c.Now)
	env.notices = NewNotificationService(notificationRepo, 30, c.Now)
	env.profiles = NewProfileService(userRepo, deviceRepo, notificationRepo, tokenRepo, pairRepo, flatRepo, rentRepo,
		env.verification, env.uploads)
	env.flats = NewFlatService(flatRepo, pictureRepo, env.uploads, 30, c.Now)
	env.rents = NewRentService(rentRepo, flatRepo, env.notices, c.Now)
	env.auth = NewAuthService(userRepo, env.verification, env.tokens, env.devices, c.Now)
	return env
}

// pngHeader - сигнатура PNG, достаточная для определения типа содержимого
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

// multipartFile собирает *multipart.FileHeader так же, как его отдает gin
func multipartFile(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&body, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	files := form.File["image"]
	require.Len(t, files, 1)
	return files[0]
}
