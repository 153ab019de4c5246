package desktop

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/KirkDiggler/explorer/internal/services/account"
)

// loginForm holds the widgets of the login screen
type loginForm struct {
	username *widget.Entry
	password *widget.Entry
	errLabel *widget.Label
	submit   *widget.Button
	register *widget.Button
}

// registerForm holds the widgets of the registration screen
type registerForm struct {
	username *widget.Entry
	password *widget.Entry
	confirm  *widget.Entry
	errLabel *widget.Label
	submit   *widget.Button
	back     *widget.Button
}

func (a *App) showLogin() *loginForm {
	a.username = ""
	a.screen = nil

	form := &loginForm{
		username: widget.NewEntry(),
		password: widget.NewPasswordEntry(),
		errLabel: widget.NewLabel(""),
	}
	form.username.SetPlaceHolder("Username")
	form.password.SetPlaceHolder("Password")
	form.errLabel.Importance = widget.DangerImportance
	form.errLabel.Wrapping = fyne.TextWrapWord

	login := func() {
		output, err := a.accountService.Login(context.Background(), &account.LoginInput{
			Username: form.username.Text,
			Password: form.password.Text,
		})
		if err != nil {
			form.errLabel.SetText(a.errorText(err))
			return
		}
		a.username = output.User.Username
		a.showMenu()
	}

	form.username.OnSubmitted = func(string) { a.window.Canvas().Focus(form.password) }
	form.password.OnSubmitted = func(string) { login() }
	form.submit = widget.NewButton("Log in", login)
	form.submit.Importance = widget.HighImportance
	form.register = widget.NewButton("Create account", func() { a.showRegister() })

	a.window.SetContent(container.NewCenter(container.NewVBox(
		widget.NewLabelWithStyle(DefaultTitle, fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Log in to play", fyne.TextAlignCenter, fyne.TextStyle{Italic: true}),
		widget.NewLabel("Username:"),
		form.username,
		widget.NewLabel("Password:"),
		form.password,
		form.submit,
		form.errLabel,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("No account yet?", fyne.TextAlignCenter, fyne.TextStyle{}),
		form.register,
		widget.NewLabelWithStyle(defaultAccountHint(), fyne.TextAlignCenter, fyne.TextStyle{Italic: true}),
	)))
	a.window.Canvas().Focus(form.username)

	return form
}

func (a *App) showRegister() *registerForm {
	form := &registerForm{
		username: widget.NewEntry(),
		password: widget.NewPasswordEntry(),
		confirm:  widget.NewPasswordEntry(),
		errLabel: widget.NewLabel(""),
	}
	form.username.SetPlaceHolder(fmt.Sprintf("At least %d characters", account.MinUsernameLength))
	form.password.SetPlaceHolder(fmt.Sprintf("At least %d characters", account.MinPasswordLength))
	form.errLabel.Importance = widget.DangerImportance
	form.errLabel.Wrapping = fyne.TextWrapWord

	register := func() {
		output, err := a.accountService.Register(context.Background(), &account.RegisterInput{
			Username:        form.username.Text,
			Password:        form.password.Text,
			ConfirmPassword: form.confirm.Text,
		})
		if err != nil {
			form.errLabel.SetText(a.errorText(err))
			return
		}

		a.showLogin()
		dialog.ShowInformation("Account created",
			fmt.Sprintf("Account %s created! You can now log in.", output.User.Username), a.window)
	}

	form.confirm.OnSubmitted = func(string) { register() }
	form.submit = widget.NewButton("Create account", register)
	form.submit.Importance = widget.HighImportance
	form.back = widget.NewButton("Back to login", func() { a.showLogin() })

	a.window.SetContent(container.NewCenter(container.NewVBox(
		widget.NewLabelWithStyle("Create account", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Username:"),
		form.username,
		widget.NewLabel("Password:"),
		form.password,
		widget.NewLabel("Confirm password:"),
		form.confirm,
		form.submit,
		form.errLabel,
		form.back,
	)))
	a.window.Canvas().Focus(form.username)

	return form
}
