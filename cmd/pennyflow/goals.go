package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pennyflow/pennyflow/internal/cli"
	"github.com/pennyflow/pennyflow/internal/model"
)

func goalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Track savings goals",
		Long:  `Savings goals are tracked separately from transactions and budgets.`,
	}

	cmd.AddCommand(listGoalsCmd())
	cmd.AddCommand(addGoalCmd())
	cmd.AddCommand(saveGoalCmd())
	cmd.AddCommand(deleteGoalCmd())

	return cmd
}

func listGoalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List savings goals with progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			tracker, st, err := openGoals(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			goalList := tracker.List()
			if len(goalList) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No goals yet. Use 'pennyflow goals add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			for _, goal := range goalList {
				pct := goal.Progress()
				fmt.Fprintf(w, "%s\t%s\t%.2f / %.2f\t%s %3d%%\tby %s\t\n",
					goal.ID,
					cli.BoldStyle.Render(goal.Name),
					goal.CurrentAmount,
					goal.TargetAmount,
					cli.ProgressBar(pct, 20),
					pct,
					goal.Deadline)
			}

			return nil
		},
	}
}

func addGoalCmd() *cobra.Command {
	var (
		description string
		deadlineStr string
		saved       float64
	)

	cmd := &cobra.Command{
		Use:   "add <target> <name>",
		Short: "Create a savings goal",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			target, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid target %q: %w", args[0], err)
			}

			goal := model.Goal{
				Name:          strings.Join(args[1:], " "),
				Description:   description,
				TargetAmount:  target,
				CurrentAmount: saved,
			}
			if deadlineStr != "" {
				goal.Deadline, err = model.ParseDate(deadlineStr)
				if err != nil {
					return err
				}
			}

			tracker, st, err := openGoals(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			created, err := tracker.Add(ctx, goal)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("goal %q created (id %s)", created.Name, created.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "what this goal is for")
	cmd.Flags().StringVar(&deadlineStr, "deadline", "", "target date as YYYY-MM-DD")
	cmd.Flags().Float64Var(&saved, "saved", 0, "amount already saved")
	return cmd
}

func saveGoalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <id> <amount>",
		Short: "Add savings toward a goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}

			tracker, st, err := openGoals(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			goal, err := tracker.Contribute(ctx, args[0], amount)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("%q is now %d%% funded", goal.Name, goal.Progress())))
			return nil
		},
	}
}

func deleteGoalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a savings goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			tracker, st, err := openGoals(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := tracker.Delete(ctx, args[0]); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("goal " + args[0] + " deleted"))
			return nil
		},
	}
}
