// Package main provides the nutritrack binary: a terminal dashboard for
// the nutrition-tracking backend. Commands map onto the web client's
// logical screens and every command passes the session guard before it
// runs.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nutritrack/cli/domain"
	"github.com/nutritrack/cli/present"
	"github.com/nutritrack/cli/repository"
	"github.com/nutritrack/cli/usecase/guard"
)

const version = "0.1.0"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nutritrack",
		Short: "Terminal dashboard for the nutrition tracker",
		Long: `Nutritrack is a terminal client for the nutrition-tracking service.

Log meals in free text, review analyzed history, follow your weekly
adherence score and calorie trend, and (as an admin) manage user accounts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// root behaves like "/": send the user where their session allows
			return withApp(func(a *app) error {
				decision := a.guard.Resolve(guard.ScreenRoot)
				if decision.RedirectTo == guard.ScreenHome {
					return runDashboard(a)
				}
				fmt.Fprintln(a.out, "Not logged in. Run 'nutritrack login' or 'nutritrack signup'.")
				return nil
			})
		},
	}

	cmd.AddCommand(
		loginCmd(),
		signupCmd(),
		logoutCmd(),
		forgotPasswordCmd(),
		resetPasswordCmd(),
		dashboardCmd(),
		logCmd(),
		adminCmd(),
		versionCmd(),
	)
	return cmd
}

// withApp wires the client, runs fn, and releases local resources.
func withApp(fn func(a *app) error) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()
	return fn(a)
}

func loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app) error {
				if err := a.enter(guard.ScreenLogin); err != nil {
					return err
				}
				ctx, cancel := a.callContext()
				defer cancel()

				profile, err := a.auth.Login(ctx, email, password)
				if err != nil {
					return fmt.Errorf("%s", domain.UserMessage(err, "Login failed"))
				}
				fmt.Fprintf(a.out, "Welcome, %s\n", profile.Name)
				if profile.IsAdmin() {
					fmt.Fprintln(a.out, "Admin panel available: nutritrack admin users")
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func signupCmd() *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app) error {
				if err := a.enter(guard.ScreenSignup); err != nil {
					return err
				}
				ctx, cancel := a.callContext()
				defer cancel()

				profile, err := a.auth.Signup(ctx, repository.SignupInput{
					Name:     name,
					Email:    email,
					Password: password,
				})
				if err != nil {
					return fmt.Errorf("%s", domain.UserMessage(err, "Signup failed"))
				}
				fmt.Fprintf(a.out, "Welcome, %s\n", profile.Name)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "display name")
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app) error {
				a.auth.Logout()
				fmt.Fprintln(a.out, "Logged out.")
				return nil
			})
		},
	}
}

func forgotPasswordCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "forgot-password",
		Short: "Request a password reset link",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app) error {
				if err := a.enter(guard.ScreenForgotPassword); err != nil {
					return err
				}
				ctx, cancel := a.callContext()
				defer cancel()

				message, err := a.auth.ForgotPassword(ctx, email)
				if err != nil {
					return fmt.Errorf("%s", domain.UserMessage(err, "An error occurred. Please try again."))
				}
				fmt.Fprintln(a.out, message)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func resetPasswordCmd() *cobra.Command {
	var password, confirm string

	cmd := &cobra.Command{
		Use:   "reset-password <token>",
		Short: "Set a new password using a reset token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app) error {
				if err := a.enter(guard.ScreenResetPassword); err != nil {
					return err
				}
				ctx, cancel := a.callContext()
				defer cancel()

				message, err := a.auth.ResetPassword(ctx, args[0], password, confirm)
				if err != nil {
					return fmt.Errorf("%s", domain.UserMessage(err, "An error occurred. Please try again."))
				}
				if message == "" {
					message = "Password updated. You can now log in."
				}
				fmt.Fprintln(a.out, message)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "new password")
	cmd.Flags().StringVarP(&confirm, "confirm", "c", "", "confirm new password")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("confirm")
	return cmd
}

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"home"},
		Short:   "Show weekly score, calorie trend, and recent logs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app) error {
				if err := a.enter(guard.ScreenHome); err != nil {
					return err
				}
				return runDashboard(a)
			})
		},
	}
}

func runDashboard(a *app) error {
	session, _ := a.guard.Session()
	if session.Profile != nil {
		fmt.Fprintf(a.out, "Welcome, %s\n\n", session.Profile.Name)
	}

	ctx, cancel := a.callContext()
	defer cancel()

	snapshot := a.dashboard.Refresh(ctx)
	present.RenderScore(a.out, snapshot.Stats.WeeklyScorePercentage)
	fmt.Fprintln(a.out)
	present.RenderTrend(a.out, snapshot.Stats.GraphData)
	fmt.Fprintln(a.out)
	present.RenderHistory(a.out, snapshot.Entries)
	return nil
}

func logCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "log <meal description>",
		Short:   "Log a meal in free text",
		Example: `  nutritrack log "I had 2 idlis with sambar and a cup of coffee"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app) error {
				if err := a.enter(guard.ScreenHome); err != nil {
					return err
				}
				ctx, cancel := a.callContext()
				defer cancel()

				text := joinArgs(args)
				entry, snapshot, err := a.dashboard.LogFood(ctx, text)
				if err != nil {
					return fmt.Errorf("%s", domain.UserMessage(err, "Failed to log food"))
				}

				tier := present.RatingTier(entry.Rating)
				fmt.Fprintf(a.out, "Logged: %.0f kcal, rated %.0f/10 (%s)\n\n", entry.Calories, entry.Rating, tier.Message)
				present.RenderScore(a.out, snapshot.Stats.WeeklyScorePercentage)
				fmt.Fprintln(a.out)
				present.RenderHistory(a.out, snapshot.Entries)
				return nil
			})
		},
	}
}

func adminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "User management (admins only)",
	}
	cmd.AddCommand(adminUsersCmd(), adminStatusCmd(), adminRoleCmd())
	return cmd
}

func adminUsersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List managed user accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app) error {
				if err := a.enter(guard.ScreenAdminPanel); err != nil {
					return err
				}
				ctx, cancel := a.callContext()
				defer cancel()

				rows, err := a.admin.ListUsers(ctx)
				if err != nil {
					return fmt.Errorf("%s", domain.UserMessage(err, "Failed to fetch users"))
				}
				present.RenderUsers(a.out, rows)
				return nil
			})
		},
	}
}

func adminStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <user-id>",
		Short: "Toggle a user between Active and Inactive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app) error {
				if err := a.enter(guard.ScreenAdminPanel); err != nil {
					return err
				}
				ctx, cancel := a.callContext()
				defer cancel()

				target, err := findUser(ctx, a, args[0])
				if err != nil {
					return err
				}
				rows, err := a.admin.ToggleStatus(ctx, *target)
				if err != nil {
					return fmt.Errorf("%s", domain.UserMessage(err, "Failed to update status"))
				}
				present.RenderUsers(a.out, rows)
				return nil
			})
		},
	}
}

func adminRoleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "role <user-id>",
		Short: "Toggle a user between User and Admin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app) error {
				if err := a.enter(guard.ScreenAdminPanel); err != nil {
					return err
				}
				ctx, cancel := a.callContext()
				defer cancel()

				target, err := findUser(ctx, a, args[0])
				if err != nil {
					return err
				}
				session, _ := a.guard.Session()
				actorID := ""
				if session.Profile != nil {
					actorID = session.Profile.ID
				}
				rows, err := a.admin.ToggleRole(ctx, actorID, *target)
				if err != nil {
					return fmt.Errorf("%s", domain.UserMessage(err, "Failed to update role"))
				}
				present.RenderUsers(a.out, rows)
				return nil
			})
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("nutritrack version %s\n", version)
		},
	}
}
