package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/impa-jovem/impa/internal/account"
	"github.com/impa-jovem/impa/internal/ui/theme"
	"github.com/impa-jovem/impa/internal/ui/views"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and log in",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		f := cmd.Flags()
		var p account.Profile
		p.Name, _ = f.GetString("name")
		p.Email, _ = f.GetString("email")
		role, _ := f.GetString("role")
		p.Role = account.Role(role)
		p.Age, _ = f.GetInt("age")
		p.Phone, _ = f.GetString("phone")
		p.Country, _ = f.GetString("country")
		p.Education, _ = f.GetString("education")
		p.Interests, _ = f.GetString("interests")
		p.AccessCode, _ = f.GetString("access-code")
		password, _ := f.GetString("password")

		u, err := e.accounts.Register(e.ctx, p, password)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), theme.Completed.Render(fmt.Sprintf("Welcome, %s! You are logged in as a %s.", u.Name, u.Role)))
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with email and password",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		u, err := e.accounts.Login(e.ctx, email, password)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), theme.Completed.Render("Welcome back, "+u.Name+"!"))
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.accounts.Logout(e.ctx); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		u := account.SessionFrom(e.ctx)
		if u == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> [%s]\n", u.Name, u.Email, u.Role)
		return nil
	},
}

var avatarCmd = &cobra.Command{
	Use:   "avatar",
	Short: "Show or change your avatar",
	Long: "Without flags, prints the current avatar. Flags change single fields;\n" +
		"hair styles: short, long, curly, bald, afro; accessories: none, glasses, headphones.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		u, err := account.RequireUser(e.ctx)
		if err != nil {
			return err
		}

		a, changed := applyAvatarFlags(cmd, u.Avatar.WithDefaults())
		if changed {
			updated, err := e.accounts.UpdateAvatar(e.ctx, a)
			if err != nil {
				return err
			}
			if updated == nil {
				return errors.New("your account no longer exists, please log in again")
			}
			u = updated
			fmt.Fprintln(cmd.OutOrStdout(), theme.Completed.Render("Avatar saved."))
		}
		fmt.Fprintln(cmd.OutOrStdout(), views.Avatar(u.Avatar))
		return nil
	},
}

func init() {
	f := registerCmd.Flags()
	f.String("name", "", "Full name")
	f.String("email", "", "Email address")
	f.String("password", "", "Password")
	f.String("role", string(account.RoleStudent), "Account role: student or mentor")
	f.Int("age", 0, "Age")
	f.String("phone", "", "Phone number")
	f.String("country", "", "Country")
	f.String("education", "", "Education level")
	f.String("interests", "", "Interests")
	f.String("access-code", "", "Mentor access code")
	_ = registerCmd.MarkFlagRequired("name")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")

	loginCmd.Flags().String("email", "", "Email address")
	loginCmd.Flags().String("password", "", "Password")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")

	addAvatarFlags(avatarCmd)
}

func addAvatarFlags(c *cobra.Command) {
	f := c.Flags()
	f.String("skin", "", "Skin color (#rrggbb)")
	f.String("hair", "", "Hair style")
	f.String("hair-color", "", "Hair color (#rrggbb)")
	f.String("clothing", "", "Clothing color (#rrggbb)")
	f.String("background", "", "Background color (#rrggbb)")
	f.String("accessory", "", "Accessory")
}

// applyAvatarFlags copies non-empty avatar flags onto a and reports
// whether any field actually changed.
func applyAvatarFlags(cmd *cobra.Command, a account.AvatarConfig) (account.AvatarConfig, bool) {
	f := cmd.Flags()
	changed := false
	set := func(flag string, dst *string) {
		if !f.Changed(flag) {
			return
		}
		v, _ := f.GetString(flag)
		if v != "" && v != *dst {
			*dst = v
			changed = true
		}
	}
	set("skin", &a.SkinColor)
	set("hair-color", &a.HairColor)
	set("clothing", &a.ClothingColor)
	set("background", &a.BackgroundColor)

	hair, accessory := string(a.HairStyle), string(a.Accessory)
	set("hair", &hair)
	set("accessory", &accessory)
	a.HairStyle = account.HairStyle(hair)
	a.Accessory = account.Accessory(accessory)
	return a, changed
}
