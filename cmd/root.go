package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/callcenter-sim/callcenter-sim/sim"
	"github.com/callcenter-sim/callcenter-sim/sim/scenario"
	"github.com/callcenter-sim/callcenter-sim/store"
)

var (
	// CLI flags for the simulation run
	seed           int64   // Base seed for random arrival/service generation
	runHours       float64 // Simulated duration per run (in hours)
	serviceMinutes float64 // Mean service time (in minutes)
	replications   int     // Replications per scenario
	logLevel       string  // Log verbosity level
	discipline     string  // Waiting-queue discipline (fifo, lifo)
	scenarioFile   string  // Optional YAML scenario file replacing the built-ins
	dbPath         string  // Optional SQLite path to persist per-run results
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "callsim",
	Short: "Discrete-event simulator for call-center staffing analysis",
}

// runCmd executes the scenario comparison using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the staffing scenarios and print their reports",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if !sim.IsValidDiscipline(discipline) {
			logrus.Fatalf("Unknown queue discipline: %q", discipline)
		}
		disc := sim.NewDiscipline(discipline)

		configs := scenario.All(runHours, serviceMinutes/60.0)
		if scenarioFile != "" {
			configs, err = scenario.Load(scenarioFile)
			if err != nil {
				logrus.Fatalf("Failed to load scenario file: %v", err)
			}
		}

		var st *store.Store
		if dbPath != "" {
			st, err = store.New(dbPath)
			if err != nil {
				logrus.Fatalf("Failed to open results store: %v", err)
			}
			defer st.Close()
		}

		logrus.Infof("Starting comparison: %d scenarios, %d replications each, base seed %d",
			len(configs), replications, seed)

		for _, cfg := range configs {
			summary, err := scenario.RunReplications(cfg, seed, replications, disc)
			if err != nil {
				logrus.Fatalf("Scenario %q failed: %v", cfg.Name, err)
			}
			summary.Print()

			if st != nil {
				for r, res := range summary.Results {
					if _, err := st.InsertResult(cfg, seed+int64(r), res); err != nil {
						logrus.Fatalf("Failed to persist result: %v", err)
					}
				}
			}
		}

		logrus.Info("Comparison complete.")
	},
}

// resultsCmd lists results persisted by earlier runs
var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "List run results persisted in the SQLite store",
	Run: func(cmd *cobra.Command, args []string) {
		if dbPath == "" {
			logrus.Fatalf("--db is required for the results command")
		}
		st, err := store.New(dbPath)
		if err != nil {
			logrus.Fatalf("Failed to open results store: %v", err)
		}
		defer st.Close()

		rows, err := st.ListResults("")
		if err != nil {
			logrus.Fatalf("Failed to list results: %v", err)
		}
		for _, row := range rows {
			cmd.Printf("#%d %s seed=%d agents=%d rate=%.1f/hr wait=%.2fmin util=%.2f qlen=%.2f served=%d\n",
				row.ID, row.Scenario, row.Seed, row.Config.NumAgents, row.Config.ArrivalRate,
				row.Result.AvgWaitTime*60, row.Result.AvgUtilization,
				row.Result.AvgQueueLength, row.Result.CustomersServed)
		}
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", scenario.DefaultSeed, "Base seed; replication r uses seed+r")
	runCmd.Flags().Float64Var(&runHours, "hours", scenario.DefaultRunHours, "Simulated duration per run (hours)")
	runCmd.Flags().Float64Var(&serviceMinutes, "service-minutes", 5, "Mean service time (minutes)")
	runCmd.Flags().IntVar(&replications, "replications", 30, "Replications per scenario")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&discipline, "discipline", "fifo", "Waiting-queue discipline (fifo, lifo)")
	runCmd.Flags().StringVar(&scenarioFile, "scenarios", "", "YAML scenario file replacing the built-in scenarios")
	runCmd.Flags().StringVar(&dbPath, "db", "", "SQLite path to persist per-run results (optional)")

	resultsCmd.Flags().StringVar(&dbPath, "db", "", "SQLite path of the results store")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(resultsCmd)
}
