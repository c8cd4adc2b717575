package cmd

import (
	"fmt"
	"path"
	"text/tabwriter"
	"time"

	"storage-provider/feature/provider"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var lsCmd = &cobra.Command{
	Use:   "ls [prefix]",
	Short: "List objects under a prefix",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, logg, err := openProvider()
		if err != nil {
			return err
		}
		defer logg.Sync()

		prefix := ""
		if len(args) == 1 {
			prefix = args[0]
		}

		listing, err := svc.ListObjects(cmd.Context(), prefix)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tPATH\tSIZE\tLAST MODIFIED")
		for _, row := range listing {
			fmt.Fprintf(w, "%s\t%s\t%.0f\t%s\n", row.Name, row.Path, row.Size, row.LastModified.Format(time.RFC3339))
		}
		return w.Flush()
	},
}

var infoCmd = &cobra.Command{
	Use:   "info <key>",
	Short: "Show size and modification time of an object",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, logg, err := openProvider()
		if err != nil {
			return err
		}
		defer logg.Sync()

		info, err := svc.GetObjectInfo(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "size: %d\nlastmodified: %s\n", info.Size, info.LastModified.Format(time.RFC3339))
		return nil
	},
}

var getCmd = &cobra.Command{
	Use:   "get <key> [destination]",
	Short: "Download an object to a local file",
	Long:  `Streams the object to destination, which defaults to the key's leaf name in the working directory.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, logg, err := openProvider()
		if err != nil {
			return err
		}
		defer logg.Sync()

		dest := path.Base(args[0])
		if len(args) == 2 {
			dest = args[1]
		}

		if err := svc.GetObjectToFile(cmd.Context(), args[0], dest); err != nil {
			return err
		}
		logg.Info("Downloaded object", zap.String("key", args[0]), zap.String("destination", dest))
		return nil
	},
}

var putFlags metaFlags

var putCmd = &cobra.Command{
	Use:   "put <key> <file>",
	Short: "Upload a local file",
	Long: `Uploads file to key, replacing any existing object. The content type is
sniffed from the file when --content-type is not given.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, logg, err := openProvider()
		if err != nil {
			return err
		}
		defer logg.Sync()

		key, src := args[0], args[1]
		meta := putFlags.meta()
		if meta.MimeType == "" {
			meta.MimeType = provider.DetectMimeType(src)
		}

		if err := svc.PutObjectFromFile(cmd.Context(), key, src, meta); err != nil {
			return err
		}
		logg.Info("Uploaded object",
			zap.String("key", key),
			zap.String("content_type", meta.MimeType),
			zap.String("policy", meta.Policy().String()))
		return nil
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <key>",
	Short: "Delete an object",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, logg, err := openProvider()
		if err != nil {
			return err
		}
		defer logg.Sync()

		if err := svc.DeleteObject(cmd.Context(), args[0]); err != nil {
			return err
		}
		logg.Info("Deleted object", zap.String("key", args[0]))
		return nil
	},
}

var mvFlags metaFlags

var mvCmd = &cobra.Command{
	Use:   "mv <source> <target>",
	Short: "Move an object to a new key",
	Long: `Copies source to target with the given metadata, then deletes source.
The move is not atomic: if the delete fails both objects remain.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, logg, err := openProvider()
		if err != nil {
			return err
		}
		defer logg.Sync()

		if err := svc.MoveObject(cmd.Context(), args[0], args[1], mvFlags.meta()); err != nil {
			return fmt.Errorf("%s: %w", provider.MoveOutcomeOf(err), err)
		}
		logg.Info("Moved object", zap.String("source", args[0]), zap.String("target", args[1]))
		return nil
	},
}

func init() {
	for _, c := range []struct {
		cmd   *cobra.Command
		flags *metaFlags
	}{{putCmd, &putFlags}, {mvCmd, &mvFlags}} {
		c.cmd.Flags().StringVar(&c.flags.contentType, "content-type", "", "Content type stored with the object")
		c.cmd.Flags().StringVar(&c.flags.disposition, "disposition", "", "Content disposition stored with the object")
		c.cmd.Flags().BoolVar(&c.flags.private, "private", false, "Store the object with a private ACL")
		c.cmd.Flags().BoolVar(&c.flags.trashed, "trashed", false, "Store the object as trashed (private, reduced redundancy)")
	}

	RootCmd.AddCommand(lsCmd, infoCmd, getCmd, putCmd, rmCmd, mvCmd)
}
