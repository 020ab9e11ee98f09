package main

import (
	"errors"
	"fmt"
	"io"

	"org-simulator/internal/repository"
	"org-simulator/internal/service"

	"github.com/spf13/cobra"
)

var errUnhealthy = errors.New("integrity checks failed")

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Print an inspection report of the generated data",
		Long:  "Prints data volume, the largest teams, sample team leads, integrity checks and completion rates. Exits non-zero when an integrity check fails.",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := bootstrap()
			if err != nil {
				return err
			}

			report, err := service.NewReportService(repository.NewSummaryRepository(db)).GetReport()
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), report)
			if !report.Healthy() {
				return errUnhealthy
			}
			return nil
		},
	}
}

func printReport(out io.Writer, report *service.Report) {
	v := report.Volume
	fmt.Fprintln(out, "--- DATA VOLUME ---")
	fmt.Fprintf(out, "Organizations: %d\n", v.Organizations)
	fmt.Fprintf(out, "Teams:         %d\n", v.Teams)
	fmt.Fprintf(out, "Users:         %d\n", v.Users)
	fmt.Fprintf(out, "Memberships:   %d\n", v.Memberships)
	fmt.Fprintf(out, "Projects:      %d\n", v.Projects)
	fmt.Fprintf(out, "Sections:      %d\n", v.Sections)
	fmt.Fprintf(out, "Tasks:         %d\n", v.Tasks)

	fmt.Fprintln(out, "\n--- LARGEST TEAMS ---")
	for _, t := range report.LargestTeams {
		fmt.Fprintf(out, "%s: %d members\n", t.TeamName, t.MemberCount)
	}

	fmt.Fprintln(out, "\n--- TEAM LEADS ---")
	for _, l := range report.TeamLeads {
		fmt.Fprintf(out, "%s: %s (%s)\n", l.TeamName, l.FullName, l.Role)
	}

	fmt.Fprintln(out, "\n--- INTEGRITY ---")
	fmt.Fprintf(out, "Tasks breaking the timeline:   %d %s\n", report.TimeTravelTasks, verdict(report.TimeTravelTasks))
	fmt.Fprintf(out, "Teams with more than one admin: %d %s\n", report.TeamsWithMultipleAdmins, verdict(report.TeamsWithMultipleAdmins))

	fmt.Fprintln(out, "\n--- COMPLETION ---")
	for _, c := range report.Completion {
		state := "open"
		if c.IsCompleted {
			state = "completed"
		}
		fmt.Fprintf(out, "%s: %d\n", state, c.Count)
	}
	for _, r := range report.CompletionByRank {
		fmt.Fprintf(out, "rank %d: %d/%d completed (%.1f%%)\n", r.SectionRank, r.Completed, r.Total, r.Rate*100)
	}
}

func verdict(violations int64) string {
	if violations == 0 {
		return "[PASS]"
	}
	return "[FAIL]"
}
