package seed

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/faizhadyan1212/StuMa-Api/internal/config"
	"github.com/faizhadyan1212/StuMa-Api/internal/database"
	"github.com/faizhadyan1212/StuMa-Api/internal/tools/common"
)

type options struct {
	envFile string
	count   int
	ci      bool
}

func NewRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{Use: "seed", Short: "Database seed tooling"}
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "path to env file")
	cmd.PersistentFlags().IntVar(&opts.count, "count", 3, "number of demo sellers to create")
	cmd.PersistentFlags().BoolVar(&opts.ci, "ci", false, "non-interactive machine-readable output")
	cmd.AddCommand(newApplyCommand(opts), newDryRunCommand(opts))
	return cmd
}

func newApplyCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "apply",
		Short: "Insert demo sellers and listings",
		RunE: func(cmd *cobra.Command, args []string) error {
			details, err := func() ([]string, error) {
				db, err := loadConfigDB(opts.envFile)
				if err != nil {
					return nil, err
				}
				if err := database.Migrate(db); err != nil {
					return nil, err
				}
				users, err := database.SeedDemoData(db, opts.count)
				if err != nil {
					return nil, err
				}
				details := make([]string, 0, len(users))
				for _, u := range users {
					details = append(details, "seeded seller: "+u.Email)
				}
				return details, nil
			}()
			report(opts, "seed apply", details, err)
			if err != nil {
				os.Exit(3)
			}
			return nil
		},
	}
}

func newDryRunCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "dry-run",
		Short: "Show what seeding would do",
		RunE: func(cmd *cobra.Command, args []string) error {
			details := []string{
				fmt.Sprintf("would create %d demo sellers with the password \"demo-password\"", opts.count),
				fmt.Sprintf("would create %d demo listings, one per seller", opts.count),
			}
			report(opts, "seed dry-run", details, nil)
			return nil
		},
	}
}

func report(opts *options, title string, details []string, err error) {
	if opts.ci {
		common.PrintCIResult(err == nil, title, details, err)
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, title+": "+err.Error())
		return
	}
	for _, d := range details {
		fmt.Println(d)
	}
}

func loadConfigDB(envFile string) (*gorm.DB, error) {
	if err := common.LoadEnvFile(envFile); err != nil {
		return nil, err
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return database.Open(cfg)
}
