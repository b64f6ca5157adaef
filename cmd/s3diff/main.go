package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oleg-kozlyuk/s3diff/internal/compare"
	"github.com/oleg-kozlyuk/s3diff/internal/config"
	"github.com/oleg-kozlyuk/s3diff/internal/locator"
	"github.com/oleg-kozlyuk/s3diff/internal/storage"
)

var (
	// Version information (set via ldflags during build)
	version = "dev"
	commit  = "unknown"
	date    = "unknown"

	// CLI flags
	storageType string
	region      string
	endpoint    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Argument or flag errors print usage and exit non-zero;
		// comparison outcomes and read errors never reach this path.
		fmt.Print(usage())
		os.Exit(1)
	}
}

// usage returns the usage message shown on argument errors.
func usage() string {
	return "Usage: s3diff <local_file> <s3_uri>\n" +
		"Example: s3diff config.yml s3://my-bucket/config.yml\n"
}

var rootCmd = &cobra.Command{
	Use:   "s3diff <local_file> <s3_uri>",
	Short: "Compare a local file with an object in S3",
	Long: `s3diff compares a local UTF-8 text file against an object stored in an
S3 bucket and prints a unified diff when they differ.

The S3 URI must have the form s3://<bucket>/<key>. Credentials are resolved
through the AWS SDK default chain.`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("s3diff %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	rootCmd.Flags().StringVar(&storageType, "storage", "", "Storage backend: s3 or minio (default s3)")
	rootCmd.Flags().StringVar(&region, "region", "", "AWS region override for the S3 backend")
	rootCmd.Flags().StringVar(&endpoint, "endpoint", "", "Custom S3-compatible endpoint URL")
}

func run(cmd *cobra.Command, args []string) error {
	localPath, remoteURI := args[0], args[1]

	// Override environment variables with CLI flags if they were explicitly set
	if cmd.Flags().Changed("storage") {
		os.Setenv("S3DIFF_STORAGE_TYPE", storageType)
	}
	if cmd.Flags().Changed("region") {
		os.Setenv("S3DIFF_REGION", region)
	}
	if cmd.Flags().Changed("endpoint") {
		os.Setenv("S3DIFF_ENDPOINT", endpoint)
	}

	ctx := cmd.Context()

	// Reject a malformed URI before building the backend, so no
	// credential files or metadata endpoints are touched for input
	// that can never name an object.
	if _, err := locator.Parse(remoteURI); err != nil {
		fmt.Printf("Error parsing S3 URI: %v\n", err)
		return nil
	}

	// Backend setup failures are reported like any other failure and
	// do not change the exit code.
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error initializing storage backend: %v\n", err)
		return nil
	}

	store, err := newObjectStore(ctx, cfg)
	if err != nil {
		fmt.Printf("Error initializing storage backend: %v\n", err)
		return nil
	}
	defer store.Close()

	comparer := compare.New(store)
	comparer.Compare(ctx, localPath, remoteURI)

	// The comparison outcome is observable on stdout only; the process
	// exits 0 whether or not the files matched.
	return nil
}

func newObjectStore(ctx context.Context, cfg *config.Config) (storage.ObjectStore, error) {
	switch cfg.Storage.Type {
	case config.StorageTypeS3:
		return storage.NewS3Store(ctx, storage.S3Config{
			Region:   cfg.Storage.Region,
			Endpoint: cfg.Storage.Endpoint,
		})
	case config.StorageTypeMinIO:
		return storage.NewMinIOStore(storage.MinIOConfig{
			Endpoint:        cfg.Storage.MinIOEndpoint,
			AccessKeyID:     cfg.Storage.MinIOAccessKey,
			SecretAccessKey: cfg.Storage.MinIOSecretKey,
			UseSSL:          cfg.Storage.MinIOUseSSL,
		})
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Storage.Type)
	}
}
