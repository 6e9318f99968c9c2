package cli

import (
	"bufio"

	"github.com/Camilo-Usuga/xxi-storage/internal/client/config"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree around app. The caller closes app
// once the command has run.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "xxi",
		Short:         "Store and share files on an xxi-storage server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			app.in = bufio.NewReader(cmd.InOrStdin())
			app.out = cmd.OutOrStdout()
			app.errOut = cmd.ErrOrStderr()
			return app.connect(cfg)
		},
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newRegisterCmd(app),
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newUploadCmd(app),
		newListCmd(app),
		newSharedCmd(app),
		newShareCmd(app),
		newRevokeCmd(app),
		newVisibilityCmd(app, "public", true),
		newVisibilityCmd(app, "private", false),
		newDeleteCmd(app),
		newURLCmd(app),
		newGetCmd(app),
	)
	return root
}
