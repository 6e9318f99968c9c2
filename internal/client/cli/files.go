package cli

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/Camilo-Usuga/xxi-storage/internal/filex"
	"github.com/Camilo-Usuga/xxi-storage/internal/netx"
	"github.com/spf13/cobra"
)

// sniffLen is how much of the content http.DetectContentType looks at.
const sniffLen = 512

// mediaTypeFor guesses a media type from the file extension, then from
// the content itself.
func mediaTypeFor(name string, content []byte) string {
	if t := mime.TypeByExtension(filepath.Ext(name)); t != "" {
		return t
	}
	return http.DetectContentType(content[:min(len(content), sniffLen)])
}

func newUploadCmd(app *App) *cobra.Command {
	var mediaType, name string
	cmd := &cobra.Command{
		Use:   "upload <path>",
		Short: "Upload a private file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireLogin(); err != nil {
				return err
			}
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			if name == "" {
				name = filepath.Base(args[0])
			}
			if mediaType == "" {
				mediaType = mediaTypeFor(name, content)
			}

			ctx, cancel := app.requestContext(cmd.Context())
			defer cancel()
			f, err := app.api.Upload(ctx, name, mediaType, content)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.out, "Uploaded %s (%s, %s)\n", f.GetName(), f.GetHumanSize(), f.GetId())
			return nil
		},
	}
	cmd.Flags().StringVarP(&mediaType, "type", "t", "", "media type, guessed when empty")
	cmd.Flags().StringVar(&name, "name", "", "stored file name, the base name of path when empty")
	return cmd
}

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List your files",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.requireLogin(); err != nil {
				return err
			}
			ctx, cancel := app.requestContext(cmd.Context())
			defer cancel()
			files, err := app.api.ListOwned(ctx)
			if err != nil {
				return err
			}
			return printOwned(app.out, files)
		},
	}
}

func newSharedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "shared",
		Short: "List files shared with you",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.requireLogin(); err != nil {
				return err
			}
			ctx, cancel := app.requestContext(cmd.Context())
			defer cancel()
			files, err := app.api.ListShared(ctx)
			if err != nil {
				return err
			}
			return printShared(app.out, files)
		},
	}
}

func newShareCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "share <file-id> <email>",
		Short: "Give a registered user read access",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireLogin(); err != nil {
				return err
			}
			ctx, cancel := app.requestContext(cmd.Context())
			defer cancel()
			f, err := app.api.Share(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(app.out, "Shared %s with %s\n", f.Name, args[1])
			return nil
		},
	}
}

func newRevokeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "revoke <file-id> <user-id>",
		Short: "Remove a user's read access",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireLogin(); err != nil {
				return err
			}
			ctx, cancel := app.requestContext(cmd.Context())
			defer cancel()
			f, err := app.api.Revoke(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(app.out, "Revoked %s on %s\n", args[1], f.Name)
			return nil
		},
	}
}

func newVisibilityCmd(app *App, use string, public bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <file-id>",
		Short: "Make a file " + use,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireLogin(); err != nil {
				return err
			}
			ctx, cancel := app.requestContext(cmd.Context())
			defer cancel()
			f, err := app.api.SetVisibility(ctx, args[0], public)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.out, "%s is now %s\n", f.Name, visibility(f.IsPublic))
			return nil
		},
	}
}

func newDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <file-id>",
		Aliases: []string{"delete"},
		Short:   "Delete a file you own",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireLogin(); err != nil {
				return err
			}
			ctx, cancel := app.requestContext(cmd.Context())
			defer cancel()
			if err := app.api.Delete(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(app.out, "Deleted %s\n", args[0])
			return nil
		},
	}
}

// newURLCmd works without a session: public files resolve anonymously.
func newURLCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "url <file-id>",
		Short: "Print a download URL for a file you may read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.requestContext(cmd.Context())
			defer cancel()
			u, err := app.api.DownloadURL(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(app.out, u)
			return nil
		},
	}
}

// newGetCmd resolves a download URL and saves the content to dest, or
// writes it to stdout when dest is "-".
func newGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <file-id> <dest>",
		Short: "Download a file you may read",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.requestContext(cmd.Context())
			u, err := app.api.DownloadURL(ctx, args[0])
			cancel()
			if err != nil {
				return err
			}

			if args[1] == "-" {
				_, err := netx.Download(cmd.Context(), nil, u, app.out)
				return err
			}

			pr, pw := io.Pipe()
			defer pr.Close()
			go func() {
				_, err := netx.Download(cmd.Context(), nil, u, pw)
				pw.CloseWithError(err)
			}()
			n, err := filex.WriteFile(args[1], pr)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.errOut, "Saved %d bytes to %s\n", n, args[1])
			return nil
		},
	}
}
