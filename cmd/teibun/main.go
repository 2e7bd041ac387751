package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/kosuda/teibun"
	"github.com/kosuda/teibun/directory"
	"github.com/kosuda/teibun/interchange"
	"github.com/kosuda/teibun/mastersource"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "teibun",
	Short: "Shared snippet catalog tools",
}

var expandCmd = &cobra.Command{
	Use:   "expand [text]",
	Short: "Expand template tokens in snippet text",
	Long:  "Expands calendar and profile tokens in the given text (or stdin when omitted).",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := argOrStdin(cmd, args)
		if err != nil {
			return err
		}
		name, _ := cmd.Flags().GetString("name")
		nowFlag, _ := cmd.Flags().GetString("now")
		now := time.Now()
		if nowFlag != "" {
			now, err = parseNow(nowFlag)
			if err != nil {
				return err
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), teibun.Expand(text, teibun.Context{UserName: name, Now: now}))
		return nil
	},
}

var fingerprintCmd = &cobra.Command{
	Use:   "fingerprint <folder> <title> <content>",
	Short: "Print the stable identifier for a snippet",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), teibun.Fingerprint(args[0], args[1], args[2]))
		return nil
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Normalize an interchange XML document",
	Long:  "Decodes an interchange document (best effort) and re-encodes it in canonical form.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error
		if len(args) == 1 {
			data, err = os.ReadFile(args[0])
		} else {
			data, err = io.ReadAll(cmd.InOrStdin())
		}
		if err != nil {
			return fmt.Errorf("reading document: %w", err)
		}
		out, err := interchange.Encode(interchange.Decode(data))
		if err != nil {
			return fmt.Errorf("encoding document: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Merge department master catalogs into a local catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		dirPath, _ := cmd.Flags().GetString("directory")
		xmlDir, _ := cmd.Flags().GetString("masters")
		actorEmail, _ := cmd.Flags().GetString("actor")
		catalogPath, _ := cmd.Flags().GetString("catalog")
		deptNames, _ := cmd.Flags().GetStringSlice("department")

		dir, err := directory.ParseFile(dirPath)
		if err != nil {
			return err
		}
		actor, ok := dir.MemberByEmail(actorEmail)
		if !ok {
			return fmt.Errorf("actor %q not in directory", actorEmail)
		}

		var departments []teibun.Department
		if len(deptNames) == 0 {
			departments = dir.DepartmentsFor(actor)
		} else {
			for _, name := range deptNames {
				dept, ok := dir.Department(name)
				if !ok {
					return fmt.Errorf("unknown department %q", name)
				}
				departments = append(departments, dept)
			}
		}

		var existing teibun.Catalog
		if catalogPath != "" {
			data, err := os.ReadFile(catalogPath)
			if err != nil {
				return fmt.Errorf("reading catalog: %w", err)
			}
			existing = teibun.Catalog(interchange.Decode(data))
		}

		svc := teibun.Service{Source: mastersource.New(mastersource.NewFSFetcher(os.DirFS(xmlDir)))}
		merged, err := svc.Sync(context.Background(), existing, actor, departments)
		if err != nil {
			return err
		}
		out, err := interchange.Encode(merged)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

// argOrStdin returns the single positional argument, or all of stdin.
func argOrStdin(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

func parseNow(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q (want RFC3339 or 2006-01-02)", s)
}

func init() {
	expandCmd.Flags().String("name", "", "user name substituted for {名前}/{name}")
	expandCmd.Flags().String("now", "", "reference time (default: current time)")

	syncCmd.Flags().String("directory", "directory.yaml", "directory manifest path")
	syncCmd.Flags().String("masters", ".", "directory holding department XML documents")
	syncCmd.Flags().String("actor", "", "acting member email")
	syncCmd.Flags().String("catalog", "", "existing catalog XML (optional)")
	syncCmd.Flags().StringSlice("department", nil, "department to sync (default: actor's departments)")
	_ = syncCmd.MarkFlagRequired("actor")

	rootCmd.AddCommand(expandCmd, fingerprintCmd, convertCmd, syncCmd)
}
