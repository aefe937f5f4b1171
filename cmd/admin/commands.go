package main

import (
	"Henteklar/models"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// adminSession is the identity the CLI acts as for role-scoped reads.
var adminSession = models.Session{AccountID: "cli", Name: "Admin", Role: models.RoleAdmin}

func createAdminCmd() *cobra.Command {
	var email, name, password string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		Long:  "Creates the Firebase user and the users profile. Without --password an invite e-mail is sent.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			role := models.RoleAdmin
			account, err := app.accounts.Create(app.ctx, models.AccountInput{
				Name:     &name,
				Email:    &email,
				Role:     &role,
				Password: password,
			})
			if err != nil {
				return fmt.Errorf("failed to create admin: %w", err)
			}
			fmt.Printf("Created admin %s (%s)\n", account.Name, account.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "e-mail address (required)")
	cmd.Flags().StringVar(&name, "name", "", "display name (required)")
	cmd.Flags().StringVar(&password, "password", "", "initial password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("name")
	return cmd
}

func seedSettingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed-settings <file.yaml>",
		Short: "Merge kindergarten settings from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}
			in, err := parseSettings(data)
			if err != nil {
				return err
			}

			settings, err := app.settings.UpdateSettings(app.ctx, in)
			if err != nil {
				return fmt.Errorf("failed to update settings: %w", err)
			}
			fmt.Printf("Settings saved for %s (%s-%s)\n",
				settings.KindergartenName, settings.OpeningHours.Open, settings.OpeningHours.Close)
			return nil
		},
	}
}

func parseSettings(data []byte) (models.SettingsInput, error) {
	var in models.SettingsInput
	if err := yaml.Unmarshal(data, &in); err != nil {
		return in, fmt.Errorf("invalid settings file: %w", err)
	}
	return in, nil
}

func importChildrenCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import-children <file.csv>",
		Short: "Create children and their guardians from a CSV file",
		Long: `Columns: name,age,group,guardian name,guardian email,guardian phone,relation.
The first line is a header. Rows for the same child name on consecutive lines add guardians.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer file.Close()

			inputs, err := readChildRows(file)
			if err != nil {
				return err
			}
			if dryRun {
				for _, in := range inputs {
					fmt.Printf("- %s (%d guardians)\n", *in.Name, len(in.Guardians))
				}
				return nil
			}

			created := 0
			for _, in := range inputs {
				child, err := app.children.CreateChild(app.ctx, in)
				if err != nil {
					app.logger.Error("failed to import child", zap.String("name", *in.Name), zap.Error(err))
					continue
				}
				created++
				fmt.Printf("Created %s (%s)\n", child.Name, child.ID)
			}
			fmt.Printf("\nImported %d of %d children\n", created, len(inputs))
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print what would be imported")
	return cmd
}

// readChildRows groups consecutive rows with the same child name into one input.
func readChildRows(r io.Reader) ([]models.ChildInput, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var inputs []models.ChildInput
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(record) == 0 || strings.TrimSpace(record[0]) == "" {
			continue
		}

		in, guardian, err := parseChildRow(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if n := len(inputs); n > 0 && *inputs[n-1].Name == *in.Name {
			if guardian != nil {
				inputs[n-1].Guardians = append(inputs[n-1].Guardians, *guardian)
			}
			continue
		}
		if guardian != nil {
			guardian.IsPrimary = true
			in.Guardians = []models.GuardianInput{*guardian}
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}

func parseChildRow(record []string) (models.ChildInput, *models.GuardianInput, error) {
	field := func(i int) string {
		if i < len(record) {
			return strings.TrimSpace(record[i])
		}
		return ""
	}

	name := field(0)
	in := models.ChildInput{Name: &name}
	if age := field(1); age != "" {
		n, err := strconv.Atoi(age)
		if err != nil {
			return in, nil, fmt.Errorf("invalid age %q", age)
		}
		in.Age = &n
	}
	if group := field(2); group != "" {
		in.Group = &group
	}

	if field(3) == "" && field(4) == "" {
		return in, nil, nil
	}
	guardian := &models.GuardianInput{
		Name:     field(3),
		Email:    strings.ToLower(field(4)),
		Phone:    field(5),
		Relation: field(6),
	}
	if guardian.Email == "" {
		return in, nil, fmt.Errorf("guardian %q has no e-mail", guardian.Name)
	}
	return in, guardian, nil
}

func transitionCmd(use, short string) *cobra.Command {
	var performedBy string

	cmd := &cobra.Command{
		Use:   use + " <child-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			transition := app.attendance.CheckIn
			if use == "check-out" {
				transition = app.attendance.CheckOut
			}
			result, err := transition(app.ctx, args[0], performedBy)
			if err != nil {
				return err
			}
			state := "checked out"
			if result.Child.IsCheckedIn {
				state = "checked in"
			}
			fmt.Printf("%s is %s\n", result.Child.Name, state)
			if !result.AuditLogged {
				fmt.Printf("warning: audit log not written: %s\n", result.AuditError)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&performedBy, "by", "Admin", "name recorded as performer")
	return cmd
}

func logCmd() *cobra.Command {
	var childName, performedBy string

	cmd := &cobra.Command{
		Use:   "log <child-id> <checkIn|checkOut>",
		Short: "Append an attendance log entry without changing the child",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := app.attendance.LogCheckInOut(app.ctx, args[0], childName, args[1], performedBy)
			if err != nil {
				return err
			}
			fmt.Printf("Logged %s for %s at %s %s (%s)\n", entry.Action, entry.ChildID, entry.Date, entry.Time, entry.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&childName, "name", "", "child name to record")
	cmd.Flags().StringVar(&performedBy, "by", "Admin", "name recorded as performer")
	return cmd
}

func logsCmd() *cobra.Command {
	var filter models.LogFilter

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "List attendance log entries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logs, err := app.visibility.Logs(app.ctx, adminSession, filter)
			if err != nil {
				return err
			}
			fmt.Printf("\nFound %d entries:\n\n", len(logs))
			for _, l := range logs {
				fmt.Printf("- %s %s  %-8s %s (by %s)\n", l.Date, l.Time, l.Action, l.ChildName, l.PerformedBy)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&filter.ChildID, "child", "", "only this child id")
	cmd.Flags().StringVar(&filter.Date, "date", "", "only this date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&filter.Limit, "limit", 50, "maximum entries")
	return cmd
}
