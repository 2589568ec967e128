// cmd/simulate.go
package cmd

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/odilf/indecision/particle"
	"github.com/odilf/indecision/simulation"
)

var (
	configPath  string
	members     int
	horizon     float64
	sampleCount int
	seed        int64
	logLevel    string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run an ensemble simulation and report θ(t)",
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&configPath, "config", "", "path to a model parameter YAML file (required)")
	simulateCmd.Flags().IntVar(&members, "members", 1000, "ensemble size")
	simulateCmd.Flags().Float64Var(&horizon, "horizon", 100, "simulation horizon (time units)")
	simulateCmd.Flags().IntVar(&sampleCount, "samples", 100, "number of θ(t) samples to report")
	simulateCmd.Flags().Int64Var(&seed, "seed", 0, "master RNG seed, for reproducible runs")
	simulateCmd.Flags().StringVar(&logLevel, "log", "info", "log level (debug, info, warn, error)")
	simulateCmd.MarkFlagRequired("config")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	logrus.SetLevel(level)

	cfg, err := LoadRunConfig(configPath)
	if err != nil {
		return err
	}

	logrus.Infof("Starting simulation: model=%s members=%d horizon=%v seed=%d",
		cfg.Model, members, horizon, seed)

	key := simulation.NewSimulationKey(seed)
	summary, err := simulateModel(cfg, key)
	if err != nil {
		return err
	}

	fmt.Printf("model=%s members=%d samples=%d\n", cfg.Model, members, len(summary.Thetas))
	fmt.Printf("theta(mean)=%.4f theta(stddev)=%.4f theta(last)=%.4f\n",
		summary.Mean, summary.StdDev, summary.Thetas[len(summary.Thetas)-1])
	logrus.Info("Simulation complete.")
	return nil
}

// simulateModel dispatches to the concrete particle model named by
// cfg.Model, builds its ensemble, advances it to horizon, and summarizes
// θ(t). Each branch is monomorphic (a distinct instantiation of the
// generic Ensemble/SingleSim types) since Go generics cannot dispatch on
// a runtime type name directly (spec.md §9: "the binding layer
// monomorphises per model").
func simulateModel(cfg *RunConfig, key simulation.SimulationKey) (simulation.Summary, error) {
	ctx := context.Background()

	switch cfg.Model {
	case "mono-ligand":
		if cfg.MonoLigand == nil {
			return simulation.Summary{}, fmt.Errorf("config: model is mono-ligand but mono_ligand section is missing")
		}
		c := cfg.MonoLigand
		model := particle.NewMonoLigand(c.ReceptorDensity, c.BindingStrength, c.OnRate, c.OffRate)
		ensemble, err := simulation.NewEnsemble[particle.MonoLigandState](model, members, key)
		if err != nil {
			return simulation.Summary{}, err
		}
		return advanceAndSummarize(ctx, ensemble)

	case "multi-ligand":
		if cfg.MultiLigand == nil {
			return simulation.Summary{}, fmt.Errorf("config: model is multi-ligand but multi_ligand section is missing")
		}
		c := cfg.MultiLigand
		model, err := particle.NewMultiLigand(c.ReceptorDensity, c.BindingStrength, c.OnRates, c.OffRates)
		if err != nil {
			return simulation.Summary{}, err
		}
		ensemble, err := simulation.NewEnsemble[particle.MultiLigandState](model, members, key)
		if err != nil {
			return simulation.Summary{}, err
		}
		return advanceAndSummarize(ctx, ensemble)

	case "interfering":
		if cfg.Interfering == nil {
			return simulation.Summary{}, fmt.Errorf("config: model is interfering but interfering section is missing")
		}
		c := cfg.Interfering
		model := particle.NewInterfering(c.TotalLigands, c.ReceptorDensity, c.AttachRate, c.DeattachRate,
			c.EnterRate, c.ObstructionFactor, c.InitialCollisionFactor)
		ensemble, err := simulation.NewEnsemble[particle.InterferingState](model, members, key)
		if err != nil {
			return simulation.Summary{}, err
		}
		return advanceAndSummarize(ctx, ensemble)

	case "fatiguing":
		if cfg.Fatiguing == nil {
			return simulation.Summary{}, fmt.Errorf("config: model is fatiguing but fatiguing section is missing")
		}
		c := cfg.Fatiguing
		model := particle.NewFatiguing(c.TotalLigands, c.ReceptorDensity, c.AttachRate, c.FatiguedAttachRate,
			c.DeattachRate, c.EnterRate, c.ObstructionFactor, c.FatiguedObstructionFactor, c.InitialCollisionFactor)
		ensemble, err := simulation.NewEnsemble[particle.FatiguingState](model, members, key)
		if err != nil {
			return simulation.Summary{}, err
		}
		return advanceAndSummarize(ctx, ensemble)

	default:
		return simulation.Summary{}, fmt.Errorf("config: unknown model %q; valid options: mono-ligand, multi-ligand, interfering, fatiguing", cfg.Model)
	}
}

func advanceAndSummarize[S particle.Attacher, P particle.Model[S]](ctx context.Context, ensemble *simulation.Ensemble[S, P]) (simulation.Summary, error) {
	if err := ensemble.AdvanceUntil(ctx, horizon); err != nil {
		return simulation.Summary{}, fmt.Errorf("advancing ensemble: %w", err)
	}
	return ensemble.Summarize(sampleCount)
}
