package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/promoshop/storefront/internal/api"
)

// adminsCmd groups the administrator account subcommands
var adminsCmd = &cobra.Command{
	Use:   "admins",
	Short: "Manage administrator accounts",
}

var adminsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List administrator accounts",
	Args:  cobra.NoArgs,
	RunE:  runAdminsList,
}

var adminsRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new administrator",
	Args:  cobra.NoArgs,
	RunE:  runAdminsRegister,
}

var adminsUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update your own account",
	Long: `Updates the authenticated account. The current password is always required;
pass --senha-nova to change the password as well.`,
	Args: cobra.NoArgs,
	RunE: runAdminsUpdate,
}

var adminsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an administrator account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return adminPanel.DeleteAdmin(cmd.Context(), args[0])
	},
}

var adminFlags struct {
	name            string
	email           string
	password        string
	currentPassword string
	newPassword     string
}

func init() {
	rootCmd.AddCommand(adminsCmd)
	adminsCmd.AddCommand(adminsListCmd)
	adminsCmd.AddCommand(adminsRegisterCmd)
	adminsCmd.AddCommand(adminsUpdateCmd)
	adminsCmd.AddCommand(adminsDeleteCmd)

	rf := adminsRegisterCmd.Flags()
	rf.StringVar(&adminFlags.name, "nome", "", "Full name")
	rf.StringVar(&adminFlags.email, "email", "", "E-mail address")
	rf.StringVar(&adminFlags.password, "password", "", "Initial password")
	adminsRegisterCmd.MarkFlagRequired("nome")
	adminsRegisterCmd.MarkFlagRequired("email")
	adminsRegisterCmd.MarkFlagRequired("password")

	uf := adminsUpdateCmd.Flags()
	uf.StringVar(&adminFlags.name, "nome", "", "Full name")
	uf.StringVar(&adminFlags.email, "email", "", "E-mail address")
	uf.StringVar(&adminFlags.currentPassword, "senha-atual", "", "Current password")
	uf.StringVar(&adminFlags.newPassword, "senha-nova", "", "New password (optional)")
	adminsUpdateCmd.MarkFlagRequired("senha-atual")
}

func runAdminsList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := store.RefreshAdmins(ctx); err != nil {
		return err
	}

	admins := store.Admins()
	if len(admins) == 0 {
		fmt.Println("No administrator accounts")
		return nil
	}

	self := sess.AdminID()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\t")
	fmt.Fprintln(w, "--\t----\t-----\t")
	for _, a := range admins {
		marker := ""
		if a.ID == self {
			marker = "(you)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.ID, a.Name, a.Email, marker)
	}
	return w.Flush()
}

func runAdminsRegister(cmd *cobra.Command, args []string) error {
	return adminPanel.RegisterAdmin(cmd.Context(), api.RegisterInput{
		Name:     adminFlags.name,
		Email:    adminFlags.email,
		Password: adminFlags.password,
	})
}

func runAdminsUpdate(cmd *cobra.Command, args []string) error {
	return adminPanel.UpdateSelf(cmd.Context(), api.AdminUpdateInput{
		Name:            adminFlags.name,
		Email:           adminFlags.email,
		CurrentPassword: adminFlags.currentPassword,
		NewPassword:     adminFlags.newPassword,
	})
}
