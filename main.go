package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ccfrost/phototransfer/commands"
	"github.com/ccfrost/phototransfer/internal/state"
	"github.com/ccfrost/phototransfer/transferconfig"
)

const phototransfer = "phototransfer"

func main() {
	var configPath string
	var config transferconfig.TransferConfig

	rootCmd := cobra.Command{
		Use:   phototransfer,
		Short: "Transfer local photo folders to Google Photos, resumably",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			config, err = transferconfig.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := config.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the configuration file")

	transferCmd := cobra.Command{
		Use:   "transfer [folder...]",
		Short: "Transfer folders to Google Photos",
		Long: `Transfer the given folders to Google Photos, one album per folder.
With --all, every not-yet-uploaded subfolder of source_root is queued instead.
Progress is saved after every file; an interrupted or quota-paused run resumes
where it stopped.`,
		Run: func(cmd *cobra.Command, args []string) {
			all, err := cmd.Flags().GetBool("all")
			if err != nil {
				fmt.Fprintln(os.Stderr, "error: invalid all flag:", err)
				os.Exit(1)
			}
			if err := runTransfer(cmd.Context(), config, args, all); err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}
		},
	}
	transferCmd.Flags().BoolP("all", "a", false, "Queue every not-yet-uploaded subfolder of source_root")
	rootCmd.AddCommand(&transferCmd)

	statusCmd := cobra.Command{
		Use:   "status",
		Short: "Show the transfer status of each subfolder of source_root",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := runStatus(cmd.Context(), config); err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}
		},
	}
	rootCmd.AddCommand(&statusCmd)

	authCmd := cobra.Command{
		Use:   "auth",
		Short: "Run the Google Photos authentication flow",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			configDir := filepath.Dir(config.ConfigPath())
			if _, err := commands.GetAuthenticatedGooglePhotosClient(cmd.Context(), config, configDir); err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}
			fmt.Println("Authentication successful.")
		},
	}
	rootCmd.AddCommand(&authCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runTransfer(ctx context.Context, config transferconfig.TransferConfig, args []string, all bool) error {
	store, err := state.Open(config.StateDBFile())
	if err != nil {
		return fmt.Errorf("failed to open transfer state: %w", err)
	}
	defer store.Close()

	configDir := filepath.Dir(config.ConfigPath())
	if err := commands.ImportLegacyState(ctx, store, configDir); err != nil {
		return fmt.Errorf("failed to import legacy state: %w", err)
	}

	folders, err := collectFolders(ctx, config, store, args, all)
	if err != nil {
		return err
	}
	if len(folders) == 0 {
		fmt.Println("Nothing to transfer.")
		return nil
	}

	// Authenticate before any folder is touched.
	httpClient, err := commands.GetAuthenticatedGooglePhotosClient(ctx, config, configDir)
	if err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}
	client, err := commands.NewGPhotosClient(httpClient)
	if err != nil {
		return err
	}

	engine := commands.NewEngine(store, client, config.BatchSize, config.LooseMediaPrefix)
	session := commands.NewSession(engine, folders)

	bar := progressbar.Default(int64(len(folders)), "Transferring folders")
	result := session.Run(ctx, func(completed, total int) {
		_ = bar.Set(completed)
	})
	_ = bar.Finish()

	fmt.Printf("Transferred %d of %d folders.\n", len(result.Completed), len(folders))
	if result.PausedReason != nil {
		fmt.Printf("Transfer paused: %v\n", result.PausedReason)
		fmt.Printf("Progress has been saved. %d folders remain; rerun to resume.\n", len(result.Remaining))
	}
	return nil
}

// collectFolders resolves the folder queue: explicit arguments, or with
// --all every subfolder of source_root not already uploaded.
func collectFolders(ctx context.Context, config transferconfig.TransferConfig, store *state.Store, args []string, all bool) ([]string, error) {
	if !all {
		if len(args) == 0 {
			return nil, fmt.Errorf("no folders given; pass folder paths or use --all")
		}
		return args, nil
	}
	if config.SourceRoot == "" {
		return nil, fmt.Errorf("source_root not configured")
	}
	subfolders, err := commands.ListSubfolders(config.SourceRoot)
	if err != nil {
		return nil, err
	}
	var folders []string
	for _, folder := range subfolders {
		status, err := commands.FolderDisplayStatus(ctx, store, folder)
		if err != nil {
			return nil, err
		}
		if status == commands.StatusReady {
			folders = append(folders, folder)
		}
	}
	return folders, nil
}

func runStatus(ctx context.Context, config transferconfig.TransferConfig) error {
	if config.SourceRoot == "" {
		return fmt.Errorf("source_root not configured")
	}

	store, err := state.Open(config.StateDBFile())
	if err != nil {
		return fmt.Errorf("failed to open transfer state: %w", err)
	}
	defer store.Close()

	folders, err := commands.ListSubfolders(config.SourceRoot)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Folder", "Status"})
	for _, folder := range folders {
		status, err := commands.FolderDisplayStatus(ctx, store, folder)
		if err != nil {
			return err
		}
		t.AppendRow(table.Row{filepath.Base(folder), string(status)})
	}
	t.Render()
	return nil
}
