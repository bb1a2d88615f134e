// Package user implements the `quadro user` subcommands
package user

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/cli"
	"github.com/thenoetrevino/quadro/internal/cli/handler"
	"github.com/thenoetrevino/quadro/internal/cli/styles"
	"github.com/thenoetrevino/quadro/internal/models"
)

// UserCmd returns the user parent command
func UserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Inspect users",
	}

	cmd.AddCommand(ListCmd())

	return cmd
}

// ListCmd returns the user list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE:  handler.Command(handler.HandlerFunc(runList)),
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

func runList(ctx context.Context, c *cli.CLI, _ *handler.Arguments) (any, error) {
	users, err := c.App.BoardService.LoadUsers(ctx)
	if err != nil {
		return nil, err
	}
	return UserList(users), nil
}

// UserList is the result of `user list`
type UserList []models.User

// IDs lists the user ids in server order
func (l UserList) IDs() []int {
	ids := make([]int, len(l))
	for i, u := range l {
		ids[i] = u.ID
	}
	return ids
}

// Pretty prints one user per line
func (l UserList) Pretty(w io.Writer) error {
	if len(l) == 0 {
		_, err := fmt.Fprintln(w, "Nenhum usuário encontrado")
		return err
	}
	for _, u := range l {
		fmt.Fprintf(w, "  %s %s\n", styles.LabelStyle.Render(fmt.Sprintf("[%d]", u.ID)), u.Username)
	}
	return nil
}
