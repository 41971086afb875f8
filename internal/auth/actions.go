package auth

import (
	"fmt"

	"github.com/dtnitsch/daily-ratings/internal/common"
	"github.com/dtnitsch/daily-ratings/internal/config"
	"github.com/dtnitsch/daily-ratings/pkg/session"
	"github.com/urfave/cli/v2"
)

func LoginAction(c *cli.Context) error {
	env, err := common.Setup(c)
	if err != nil {
		return err
	}
	defer env.Close()

	if err := session.Login(env.Gate, config.Password(), c.String("password")); err != nil {
		env.Logger.Warn("login failed", "error", err)
		return err
	}
	fmt.Fprintln(c.App.Writer, "Logged in.")
	return nil
}

func LogoutAction(c *cli.Context) error {
	env, err := common.Setup(c)
	if err != nil {
		return err
	}
	defer env.Close()

	if err := env.Gate.SetAuthorized(false); err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, "Logged out.")
	return nil
}
