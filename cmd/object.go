package cmd

import (
	"fmt"
	"io"

	"oss-bridge/core/config"
	"oss-bridge/core/logger"
	"oss-bridge/core/storage"
	"oss-bridge/feature/objects"

	"github.com/spf13/cobra"
)

// cliRayID tags audit events written from the command line.
const cliRayID = "cli"

// objectCmd groups the single-operation commands.
var objectCmd = &cobra.Command{
	Use:   "object",
	Short: "Run a single operation against the configured bucket",
}

var objectExistsCmd = &cobra.Command{
	Use:   "exists [path]",
	Short: "Check whether an object exists",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newObjectService()
		if err != nil {
			return err
		}
		exists, err := svc.Exists(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), exists)
		return nil
	},
}

var objectPutCmd = &cobra.Command{
	Use:   "put [local-file] [path]",
	Short: "Upload a local file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newObjectService()
		if err != nil {
			return err
		}
		location, err := svc.Upload(cmd.Context(), cliRayID, args[1], args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), location)
		return nil
	},
}

var objectSignCmd = &cobra.Command{
	Use:   "sign [path]",
	Short: "Print a signed URL for an object",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newObjectService()
		if err != nil {
			return err
		}
		signed, err := svc.Sign(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), signed)
		return nil
	},
}

var objectURLCmd = &cobra.Command{
	Use:   "url [path]",
	Short: "Print the URL of an object (signed for private buckets)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newObjectService()
		if err != nil {
			return err
		}
		u, err := svc.URL(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), u)
		return nil
	},
}

var objectRmCmd = &cobra.Command{
	Use:   "rm [path]",
	Short: "Delete an object",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newObjectService()
		if err != nil {
			return err
		}
		return svc.Delete(cmd.Context(), cliRayID, args[0])
	},
}

var objectMkdirCmd = &cobra.Command{
	Use:   "mkdir [name]",
	Short: "Create a directory marker",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newObjectService()
		if err != nil {
			return err
		}
		return svc.CreateDir(cmd.Context(), cliRayID, args[0])
	},
}

var objectLsCmd = &cobra.Command{
	Use:   "ls [prefix]",
	Short: "List objects and directories",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newObjectService()
		if err != nil {
			return err
		}

		opts := storage.ListOptions{}
		opts.Delimiter, _ = cmd.Flags().GetString("delimiter")
		opts.Marker, _ = cmd.Flags().GetString("marker")
		opts.MaxKeys, _ = cmd.Flags().GetInt("max-keys")
		if len(args) == 1 {
			opts.Prefix = args[0]
		}

		listing, err := svc.ListRaw(cmd.Context(), opts)
		if err != nil {
			return err
		}
		printListing(cmd.OutOrStdout(), listing)
		return nil
	},
}

var objectCatCmd = &cobra.Command{
	Use:   "cat [path]",
	Short: "Write an object's contents to stdout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newObjectService()
		if err != nil {
			return err
		}
		stream, err := svc.ReadStream(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		defer stream.Close()

		_, err = io.Copy(cmd.OutOrStdout(), stream.Body)
		return err
	},
}

func init() {
	objectLsCmd.Flags().String("delimiter", "/", "Group keys up to this delimiter (empty for a flat listing)")
	objectLsCmd.Flags().String("marker", "", "Start listing after this key")
	objectLsCmd.Flags().Int("max-keys", storage.DefaultMaxKeys, "Maximum entries to return")

	objectCmd.AddCommand(objectExistsCmd, objectPutCmd, objectSignCmd, objectURLCmd,
		objectRmCmd, objectMkdirCmd, objectLsCmd, objectCatCmd)
	RootCmd.AddCommand(objectCmd)
}

func newObjectService() (*objects.Service, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	adapter, err := storage.New(cfg.Storage, logg)
	if err != nil {
		return nil, err
	}

	return objects.NewService(adapter, logg, connectAudit(cfg.Database, logg)), nil
}

func printListing(w io.Writer, listing *storage.ObjectListing) {
	for _, dir := range listing.Prefixes {
		fmt.Fprintf(w, "%12s  %s\n", "DIR", dir)
	}
	for _, obj := range listing.Objects {
		fmt.Fprintf(w, "%12d  %s\n", obj.Size, obj.Key)
	}
	if listing.IsTruncated {
		fmt.Fprintf(w, "\n(truncated, continue with --marker %q)\n", listing.NextMarker)
	}
}
