package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/zkauth/internal/client/client"
	"github.com/dmitrijs2005/zkauth/internal/client/config"
	"github.com/dmitrijs2005/zkauth/internal/client/services"
	"github.com/dmitrijs2005/zkauth/internal/common"
	"github.com/dmitrijs2005/zkauth/internal/zkp"
	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	infoColor    = color.New(color.FgCyan)
)

// getPassword is a test seam for GetPassword.
var getPassword = GetPassword

type App struct {
	config       *config.Config
	authService  services.AuthService
	identity     string
	sessionToken string
	reader       *bufio.Reader
	out          io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	group, err := loadGroup(c)
	if err != nil {
		return nil, fmt.Errorf("group init error: %w", err)
	}

	apiClient, err := client.NewZKAuthClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	kdf := zkp.KDFParams{Time: c.KDFTime, Memory: c.KDFMemory, Threads: c.KDFThreads}
	as := services.NewAuthService(apiClient, group, zkp.NewCryptoSource(), kdf)

	return &App{config: c, authService: as, reader: bufio.NewReader(os.Stdin), out: os.Stdout}, nil
}

// loadGroup selects the numeric group proofs are computed in. It must be
// the one the server is configured with.
func loadGroup(c *config.Config) (*zkp.Group, error) {
	if !c.HasCustomGroup() {
		return zkp.DefaultGroup()
	}
	return zkp.ParseGroup(c.GroupModulus, c.GroupOrder, c.GroupGeneratorA, c.GroupGeneratorB)
}

func (a *App) Run(ctx context.Context) {
	defer a.authService.Close(ctx)

	infoColor.Fprintln(a.out, "Welcome to zkauth CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.reader))
}

func (a *App) isLoggedIn() bool {
	return a.sessionToken != ""
}

func (a *App) getStatus() string {
	if a.identity == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.identity)
}

// readCredentials prompts for identity and password. The password must be
// wiped by the caller.
func (a *App) readCredentials() (string, []byte, error) {
	identity, err := GetSimpleText(a.reader, "Enter identity", a.out)
	if err != nil {
		return "", nil, err
	}
	if identity == "" {
		return "", nil, errors.New("identity must not be empty")
	}

	password, err := getPassword(a.out)
	if err != nil {
		return "", nil, err
	}
	return identity, password, nil
}

func (a *App) Register(ctx context.Context) error {
	identity, password, err := a.readCredentials()
	if err != nil {
		errorColor.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, identity, password); err != nil {
		if errors.Is(err, common.ErrIdentityExists) {
			errorColor.Fprintf(a.out, "Identity %q is already registered\n", identity)
		} else {
			errorColor.Fprintf(a.out, "Registration unsuccessful: %v\n", err)
		}
		return err
	}

	successColor.Fprintf(a.out, "Registered %s\n", identity)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	identity, password, err := a.readCredentials()
	if err != nil {
		errorColor.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	defer common.WipeByteArray(password)

	token, err := a.authService.Login(ctx, identity, password)
	if err != nil {
		switch {
		case errors.Is(err, client.ErrUnavailable):
			errorColor.Fprintln(a.out, "Server unavailable")
		case errors.Is(err, common.ErrUnknownIdentity):
			errorColor.Fprintf(a.out, "Identity %q is not registered\n", identity)
		case errors.Is(err, common.ErrProofRejected):
			errorColor.Fprintln(a.out, "Login unsuccessful: wrong password")
		default:
			errorColor.Fprintf(a.out, "Login unsuccessful: %v\n", err)
		}
		return err
	}

	a.identity = identity
	a.sessionToken = token
	successColor.Fprintln(a.out, "Login successful")
	infoColor.Fprintf(a.out, "Session token: %s\n", token)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.identity = ""
	a.sessionToken = ""
	infoColor.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) Token(ctx context.Context) error {
	if !a.isLoggedIn() {
		errorColor.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintln(a.out, a.sessionToken)
	return nil
}
