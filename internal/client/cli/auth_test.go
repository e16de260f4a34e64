package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/jobtrackr/internal/client/models"
)

// stubInputs replaces the interactive input seams with canned answers.
// Text prompts are answered in order; the password is always pw.
func stubInputs(t *testing.T, answers []string, pw []byte) {
	t.Helper()
	origST, origML, origGP := getSimpleText, getMultiline, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", nil
		}
		v := answers[i]
		i++
		return v, nil
	}
	getMultiline = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return "", nil }
	getPassword = func(_ io.Writer, _ string) ([]byte, error) {
		return append([]byte(nil), pw...), nil
	}
	t.Cleanup(func() {
		getSimpleText = origST
		getMultiline = origML
		getPassword = origGP
	})
}

type fakeAuth struct {
	loginUser, loginPass string
	loginRet             *models.UserProfile
	loginErr             error

	regUser, regEmail, regPass string

	logoutCalled bool
	logoutErr    error

	changedOld, changedNew string
}

func (f *fakeAuth) Restore(context.Context) error { return nil }
func (f *fakeAuth) Login(_ context.Context, username, password string) (*models.UserProfile, error) {
	f.loginUser, f.loginPass = username, password
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	if f.loginRet != nil {
		return f.loginRet, nil
	}
	return &models.UserProfile{Username: username}, nil
}
func (f *fakeAuth) Register(_ context.Context, username, email, password string) (*models.UserProfile, error) {
	f.regUser, f.regEmail, f.regPass = username, email, password
	return &models.UserProfile{Username: username, Email: email}, nil
}
func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	return f.logoutErr
}
func (f *fakeAuth) Profile(context.Context) (*models.UserProfile, error) {
	return &models.UserProfile{Username: "alice"}, nil
}
func (f *fakeAuth) UpdateProfile(_ context.Context, req models.UpdateProfileRequest) (*models.UserProfile, error) {
	return &models.UserProfile{Username: "alice", FullName: req.FullName, Skills: req.Skills}, nil
}
func (f *fakeAuth) ChangePassword(_ context.Context, oldPassword, newPassword string) error {
	f.changedOld, f.changedNew = oldPassword, newPassword
	return nil
}
func (f *fakeAuth) Close(context.Context) error { return nil }

func newTestApp(auth *fakeAuth) *App {
	return &App{auth: auth, reader: bufio.NewReader(strings.NewReader(""))}
}

func TestLogin_Success(t *testing.T) {
	silencePrintln(t)
	f := &fakeAuth{}
	a := newTestApp(f)

	stubInputs(t, []string{"alice"}, []byte("secret123"))

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if f.loginUser != "alice" {
		t.Fatalf("login user mismatch: %q", f.loginUser)
	}
	if f.loginPass != "secret123" {
		t.Fatalf("login pass mismatch: %q", f.loginPass)
	}
}

func TestLogin_ErrorPropagates(t *testing.T) {
	silencePrintln(t)
	f := &fakeAuth{loginErr: errors.New("invalid credentials")}
	a := newTestApp(f)

	stubInputs(t, []string{"alice"}, []byte("wrong"))

	if err := a.Login(context.Background()); err == nil {
		t.Fatal("want error from Login")
	}
}

func TestRegister_Success(t *testing.T) {
	silencePrintln(t)
	f := &fakeAuth{}
	a := newTestApp(f)

	stubInputs(t, []string{"bob", "bob@example.com"}, []byte("secret123"))

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if f.regUser != "bob" || f.regEmail != "bob@example.com" || f.regPass != "secret123" {
		t.Fatalf("register args mismatch: %q %q %q", f.regUser, f.regEmail, f.regPass)
	}
}

func TestLogout(t *testing.T) {
	silencePrintln(t)
	f := &fakeAuth{}
	a := newTestApp(f)

	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("Logout err: %v", err)
	}
	if !f.logoutCalled {
		t.Fatal("Logout not delegated to service")
	}
}

func TestLogout_ErrorPropagates(t *testing.T) {
	silencePrintln(t)
	f := &fakeAuth{logoutErr: errors.New("clean-fail")}
	a := newTestApp(f)

	if err := a.Logout(context.Background()); err == nil {
		t.Fatal("want error from Logout")
	}
}

func TestChangePassword_PassesBothValues(t *testing.T) {
	silencePrintln(t)
	f := &fakeAuth{}
	a := newTestApp(f)

	// getPassword returns the same canned value for both prompts.
	stubInputs(t, nil, []byte("hunter22"))

	if err := a.ChangePassword(context.Background()); err != nil {
		t.Fatalf("ChangePassword err: %v", err)
	}
	if f.changedOld != "hunter22" || f.changedNew != "hunter22" {
		t.Fatalf("passwords not passed through: %q %q", f.changedOld, f.changedNew)
	}
}
