// Package cli is an interactive terminal front end for the session store.
//
// Commands are read one per line:
//
//	register   create an account (logs in on success)
//	login      log in with email and password
//	logout     end the session
//	whoami     show who is logged in
//	profile    show the profile of the logged-in user
//	edit       change name and phone
//	help       list commands
//	quit       leave (the session stays persisted)
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/educlima/vasco-app/internal/models"
	"github.com/educlima/vasco-app/internal/services/auth"
	"github.com/educlima/vasco-app/internal/validation"
	"golang.org/x/term"
)

// PasswordReader reads a secret without echoing it
type PasswordReader func() (string, error)

// TerminalPasswords reads passwords from f with echo disabled
func TerminalPasswords(f *os.File) PasswordReader {
	return func() (string, error) {
		b, err := term.ReadPassword(int(f.Fd()))
		return string(b), err
	}
}

// App is the REPL state
type App struct {
	auth      *auth.Service
	in        *bufio.Reader
	out       io.Writer
	passwords PasswordReader
	now       func() time.Time
}

// New creates an App. With a nil passwords reader, secrets are read as
// plain lines from in.
func New(svc *auth.Service, in io.Reader, out io.Writer, passwords PasswordReader) *App {
	return &App{
		auth:      svc,
		in:        bufio.NewReader(in),
		out:       out,
		passwords: passwords,
		now:       time.Now,
	}
}

// Run restores the persisted session and processes commands until quit or EOF
func (a *App) Run(ctx context.Context) error {
	a.auth.RestoreSession(ctx)
	a.printf("Clube de Regatas Vasco da Gama - área do torcedor\n")
	a.whoami()
	a.printf("Digite 'help' para ver os comandos.\n")

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		a.printf("> ")
		line, err := a.readLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
		case "help":
			a.help()
		case "register":
			err = a.register(ctx)
		case "login":
			err = a.login(ctx)
		case "logout":
			a.auth.Logout(ctx)
			a.printf("Sessão encerrada.\n")
		case "whoami":
			a.whoami()
		case "profile":
			a.profile()
		case "edit":
			err = a.edit(ctx)
		case "quit", "exit":
			return nil
		default:
			a.printf("Comando desconhecido %q. Digite 'help' para ver os comandos.\n", line)
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (a *App) help() {
	a.printf("Comandos: register, login, logout, whoami, profile, edit, help, quit\n")
}

func (a *App) whoami() {
	user := a.auth.CurrentUser()
	if user == nil {
		a.printf("Nenhum torcedor logado.\n")
		return
	}
	a.printf("Logado como %s <%s>.\n", user.Name, user.Email)
}

func (a *App) login(ctx context.Context) error {
	email, err := a.prompt("Email: ")
	if err != nil {
		return err
	}
	password, err := a.promptSecret("Senha: ")
	if err != nil {
		return err
	}

	form := validation.Login{Email: email, Password: password}
	if err := form.Validate(); err != nil {
		a.printf("%s\n", err)
		return nil
	}

	user, err := a.auth.Authenticate(ctx, form.Email, form.Password)
	if err != nil {
		a.printf("%s\n", auth.MsgInvalidCredentials)
		return nil
	}
	a.printf("Bem-vindo, %s!\n", user.Name)
	return nil
}

func (a *App) register(ctx context.Context) error {
	var form validation.Registration
	var err error

	if form.Name, err = a.prompt("Nome completo: "); err != nil {
		return err
	}
	form.Name = validation.SanitizeName(form.Name)
	if form.Email, err = a.prompt("Email: "); err != nil {
		return err
	}
	if form.Phone, err = a.prompt("Telefone: "); err != nil {
		return err
	}
	form.Phone = validation.SanitizePhone(form.Phone)
	if form.BirthDate, err = a.prompt("Data de nascimento (AAAA-MM-DD): "); err != nil {
		return err
	}
	if form.Password, err = a.promptSecret("Senha: "); err != nil {
		return err
	}
	if form.ConfirmPassword, err = a.promptSecret("Confirme a senha: "); err != nil {
		return err
	}

	if err := form.Validate(a.now()); err != nil {
		a.printf("%s\n", err)
		return nil
	}

	_, err = a.auth.CreateAccount(ctx, auth.RegisterInput{
		Name:      form.Name,
		Email:     form.Email,
		Phone:     form.Phone,
		BirthDate: form.BirthDate,
		Password:  form.Password,
	})
	if errors.Is(err, auth.ErrEmailExists) {
		a.printf("%s\n", auth.MsgEmailExists)
		return nil
	}
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	a.printf("%s\n", auth.MsgRegistered)
	return nil
}

func (a *App) profile() {
	user := a.auth.CurrentUser()
	if user == nil {
		a.printf("Nenhum torcedor logado.\n")
		return
	}
	a.printf("Nome:       %s\n", user.Name)
	a.printf("Email:      %s\n", user.Email)
	a.printf("Telefone:   %s\n", user.Phone)
	a.printf("Nascimento: %s\n", user.BirthDate)
	a.printf("Torcedor há %d dias\n", models.MembershipDays(a.now()))
}

func (a *App) edit(ctx context.Context) error {
	if a.auth.CurrentUser() == nil {
		a.printf("Nenhum torcedor logado.\n")
		return nil
	}

	var form validation.Profile
	var err error
	if form.Name, err = a.prompt("Nome completo: "); err != nil {
		return err
	}
	form.Name = validation.SanitizeName(form.Name)
	if form.Phone, err = a.prompt("Telefone: "); err != nil {
		return err
	}
	form.Phone = validation.SanitizePhone(form.Phone)

	if _, err := a.auth.UpdateProfile(ctx, form); err != nil {
		a.printf("%s\n", err)
		return nil
	}
	a.printf("%s\n", auth.MsgProfileUpdated)
	return nil
}

func (a *App) prompt(label string) (string, error) {
	a.printf("%s", label)
	return a.readLine()
}

func (a *App) promptSecret(label string) (string, error) {
	if a.passwords == nil {
		return a.prompt(label)
	}
	a.printf("%s", label)
	secret, err := a.passwords()
	a.printf("\n")
	return secret, err
}

// readLine returns the next line without its line ending. A final line
// without a newline is returned before io.EOF.
func (a *App) readLine() (string, error) {
	line, err := a.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
