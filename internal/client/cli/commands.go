package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/userauth/internal/api"
	"github.com/dmitrijs2005/userauth/internal/client/client"
)

var ErrPasswordMismatch = errors.New("passwords do not match")

func (a *App) Register(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	fullName, err := GetSimpleText(a.reader, "Full name", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out, "Password")
	if err != nil {
		return err
	}
	confirm, err := GetPassword(a.out, "Repeat password")
	if err != nil {
		return err
	}
	if password != confirm {
		return ErrPasswordMismatch
	}

	u, err := a.client.Register(ctx, email, password, fullName)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Registered %s (id %d)\n", u.Email, u.ID)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out, "Password")
	if err != nil {
		return err
	}

	resp, err := a.client.Login(ctx, email, password)
	if err != nil {
		return err
	}

	if err := a.session.Save(resp.AccessToken); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	name := email
	if resp.User != nil && resp.User.FullName != "" {
		name = resp.User.FullName
	}
	fmt.Fprintf(a.out, "Logged in as %s, token valid for %s\n", name, time.Duration(resp.ExpiresIn)*time.Second)
	return nil
}

func (a *App) Logout() error {
	if err := a.session.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// ListUsers accepts optional page and page size arguments. The server
// clamps out-of-range values.
func (a *App) ListUsers(ctx context.Context, args []string) error {
	page, size := 1, 10
	var err error
	if len(args) > 0 {
		if page, err = strconv.Atoi(args[0]); err != nil {
			return fmt.Errorf("%w: page must be a number", ErrUsage)
		}
	}
	if len(args) > 1 {
		if size, err = strconv.Atoi(args[1]); err != nil {
			return fmt.Errorf("%w: page size must be a number", ErrUsage)
		}
	}

	resp, err := a.client.ListUsers(ctx, page, size)
	if err != nil {
		return a.explain(err)
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tEMAIL\tNAME\tCREATED")
	for _, u := range resp.Users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", u.ID, u.Email, u.FullName, u.CreatedAt.Format(time.RFC3339))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "page %d, %d per page, %d total\n", resp.Page, resp.PageSize, resp.TotalCount)
	return nil
}

func (a *App) ShowUser(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: user <id>", ErrUsage)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: id must be a number", ErrUsage)
	}

	u, err := a.client.GetUser(ctx, id)
	if err != nil {
		return a.explain(err)
	}
	a.printUser(u)
	return nil
}

func (a *App) Ping(ctx context.Context) error {
	if err := a.client.Ping(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "OK")
	return nil
}

func (a *App) printUser(u *api.User) {
	fmt.Fprintf(a.out, "ID:      %d\n", u.ID)
	fmt.Fprintf(a.out, "Email:   %s\n", u.Email)
	fmt.Fprintf(a.out, "Name:    %s\n", u.FullName)
	fmt.Fprintf(a.out, "Created: %s\n", u.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(a.out, "Updated: %s\n", u.UpdatedAt.Format(time.RFC3339))
}

// explain adds a hint for errors a user can act on.
func (a *App) explain(err error) error {
	if errors.Is(err, client.ErrUnauthorized) {
		return fmt.Errorf("%w (run 'login' first)", err)
	}
	return err
}
