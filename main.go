package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"candygalaxy/internal/config"
	"candygalaxy/internal/minigame"
	"candygalaxy/internal/pet"
	"candygalaxy/internal/storage/sqlite"
	"candygalaxy/internal/ui"
)

const Version = "v1.0.0"

var (
	stateDir   string
	storeKind  string
	tuningFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "candygalaxy",
		Short: "Candy Galaxy - raise a candy pet and bring its planet back to life",
		RunE: func(cmd *cobra.Command, args []string) error {
			if version, _ := cmd.Flags().GetBool("version"); version {
				fmt.Println(Version)
				return nil
			}
			return runGame()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&stateDir, "state-dir", "", "Directory holding the save, tuning and log files (env CANDY_STATE_DIR)")
	rootCmd.PersistentFlags().StringVar(&storeKind, "store", "", "Save backend: json or sqlite (env CANDY_STORE)")
	rootCmd.PersistentFlags().StringVar(&tuningFile, "tuning", "", "Path to a TOML balance file (env CANDY_TUNING_FILE)")
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")

	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(actionCmd("feed", "Feed your pet a cake", feedAction))
	rootCmd.AddCommand(actionCmd("play", "Play with your pet", func(e *pet.Engine) (string, error) {
		e.Play()
		return "🎾 Wheee!", nil
	}))
	rootCmd.AddCommand(actionCmd("cuddle", "Cuddle your pet", func(e *pet.Engine) (string, error) {
		e.Cuddle()
		return "💗 So cozy!", nil
	}))
	rootCmd.AddCommand(actionCmd("sleep", "Put your pet down for a nap", func(e *pet.Engine) (string, error) {
		e.Sleep()
		return "💤 Nap time", nil
	}))
	rootCmd.AddCommand(actionCmd("evolve", "Evolve your pet if it has enough care", evolveAction))
	rootCmd.AddCommand(actionCmd("repair", "Repair the rocket with rocket parts", repairAction))
	rootCmd.AddCommand(actionCmd("creative", "Toggle creative mode", func(e *pet.Engine) (string, error) {
		e.ToggleCreativeMode()
		return fmt.Sprintf("🎮 Creative mode: %t", e.State().CreativeMode), nil
	}))
	rootCmd.AddCommand(buyCmd)
	rootCmd.AddCommand(useCmd)
	rootCmd.AddCommand(nameCmd)
	rootCmd.AddCommand(lineageCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(tuningCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// session is one run of the game against the configured save
type session struct {
	cfg     config.Config
	store   pet.Store
	engine  *pet.Engine
	logFile *os.File
}

// loadConfig reads the environment with command line flags taking precedence.
// Flags go through the environment so paths derived from the state directory follow them.
func loadConfig() (config.Config, error) {
	overrides := map[string]string{
		"CANDY_STATE_DIR":   stateDir,
		"CANDY_STORE":       storeKind,
		"CANDY_TUNING_FILE": tuningFile,
	}
	for key, value := range overrides {
		if value == "" {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return config.Config{}, fmt.Errorf("set %s: %w", key, err)
		}
	}
	return config.Load()
}

func openStore(cfg config.Config) (pet.Store, error) {
	if cfg.Store == config.StoreSQLite {
		return sqlite.Open(cfg.StatePath())
	}
	return pet.NewFileStore(cfg.StatePath())
}

// openSession loads the save, catches the pet up on time spent away and saves again
func openSession(ctx context.Context) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.StateDir, 0755); err != nil {
		return nil, fmt.Errorf("create state directory: %w", err)
	}
	logFile, err := tea.LogToFile(cfg.LogFile, "candygalaxy")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	tuning, err := cfg.Tuning()
	if err != nil {
		logFile.Close()
		return nil, err
	}
	store, err := openStore(cfg)
	if err != nil {
		logFile.Close()
		return nil, fmt.Errorf("open %s store: %w", cfg.Store, err)
	}

	engine := pet.NewEngine(pet.LoadState(ctx, store), tuning)
	engine.CalculateOfflineDecay()
	engine.UpdatePlanetHappiness()
	pet.SaveState(ctx, store, engine.State())

	return &session{cfg: cfg, store: store, engine: engine, logFile: logFile}, nil
}

func (s *session) save(ctx context.Context) {
	s.engine.UpdatePlanetHappiness()
	pet.SaveState(ctx, s.store, s.engine.State())
}

func (s *session) Close() error {
	err := s.store.Close()
	if cerr := s.logFile.Close(); err == nil {
		err = cerr
	}
	return err
}

func runGame() error {
	ctx := context.Background()
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	p := tea.NewProgram(ui.NewModel(s.engine, s.store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	s.save(ctx)
	return nil
}

// withSession runs fn against a loaded game and saves afterwards
func withSession(fn func(s *session) error) error {
	ctx := context.Background()
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := fn(s); err != nil {
		return err
	}
	s.save(ctx)
	return nil
}

func printStatus(e *pet.Engine) {
	p := e.State().Pet
	name := p.Name
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Printf("%s%s %s the %s: %s\n", p.GetAccessoryEmoji(), p.GetFormEmoji(), name, p.GetFormName(), pet.GetStatus(e.State()))
}

// actionCmd builds a no-argument command that applies one engine action
func actionCmd(use, short string, action func(e *pet.Engine) (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(func(s *session) error {
				msg, err := action(s.engine)
				if err != nil {
					return err
				}
				fmt.Println(msg)
				printStatus(s.engine)
				return nil
			})
		},
	}
}

func feedAction(e *pet.Engine) (string, error) {
	s := e.State()
	if !s.CreativeMode && s.Inventory[pet.FoodItemID] <= 0 {
		return "", errors.New("no cake left, buy one with 'candygalaxy buy cake'")
	}
	before := s.Pet.Stage
	e.Feed()
	if s.Pet.Stage > before {
		return fmt.Sprintf("🍰 Yum! ✨ Your pet evolved into a %s!", s.Pet.GetFormName()), nil
	}
	return "🍰 Yum!", nil
}

func evolveAction(e *pet.Engine) (string, error) {
	if !e.EvolvePet() {
		return fmt.Sprintf("🥚 Not ready yet (%.0f%%)", pet.EvolutionProgress(e.State().Pet)), nil
	}
	return fmt.Sprintf("✨ Your pet evolved into a %s!", e.State().Pet.GetFormName()), nil
}

func repairAction(e *pet.Engine) (string, error) {
	s := e.State()
	if s.RocketRepaired {
		return "🚀 The rocket is ready for launch!", nil
	}
	e.DiscoverRocket()
	if !e.RepairRocket() {
		return fmt.Sprintf("🔧 Need %d rocket parts, have %d", pet.RocketPartsRequired, s.RocketParts), nil
	}
	return "🚀 The rocket is fixed!", nil
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print a one-line status, e.g. for a shell prompt",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session) error {
			printStatus(s.engine)
			return nil
		})
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the full stats card",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		plain, _ := cmd.Flags().GetBool("plain")
		return withSession(func(s *session) error {
			if plain {
				fmt.Print(ui.RenderStats(s.engine.State()))
				return nil
			}
			return ui.DisplayStats(s.engine.State())
		})
	},
}

var buyCmd = &cobra.Command{
	Use:   "buy <item>",
	Short: "Buy an item from the candy shop",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session) error {
			item, ok := pet.GetStoreItem(args[0])
			if !ok {
				return fmt.Errorf("unknown item %q (available: %s)", args[0], itemIDs())
			}
			if !s.engine.BuyItem(item.ID) {
				return fmt.Errorf("%s costs %d rocket parts, have %d", item.Name, item.Cost, s.engine.State().RocketParts)
			}
			fmt.Printf("%s Bought %s! You now have %d.\n", item.Emoji, item.Name, s.engine.State().Inventory[item.ID])
			return nil
		})
	},
}

var useCmd = &cobra.Command{
	Use:   "use <item>",
	Short: "Give your pet an item from the inventory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session) error {
			item, ok := pet.GetStoreItem(args[0])
			if !ok {
				return fmt.Errorf("unknown item %q (available: %s)", args[0], itemIDs())
			}
			if s.engine.State().Inventory[item.ID] <= 0 {
				return fmt.Errorf("you don't have any %s", item.Name)
			}
			s.engine.UseItem(item.ID)
			fmt.Printf("%s Used %s\n", item.Emoji, item.Name)
			printStatus(s.engine)
			return nil
		})
	},
}

func itemIDs() string {
	ids := make([]string, 0, len(pet.StoreItems))
	for _, item := range pet.StoreItems {
		ids = append(ids, item.ID)
	}
	return strings.Join(ids, ", ")
}

var nameCmd = &cobra.Command{
	Use:   "name <name>",
	Short: "Name your pet",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(strings.Join(args, " "))
		if name == "" {
			return errors.New("name must not be empty")
		}
		return withSession(func(s *session) error {
			s.engine.SetPetName(name)
			if acc := s.engine.State().Pet.GetAccessoryEmoji(); acc != "" {
				fmt.Println(acc + " A secret accessory appeared!")
			}
			printStatus(s.engine)
			return nil
		})
	},
}

var lineageCmd = &cobra.Command{
	Use:       "lineage <gummy|chocolate>",
	Short:     "Choose your pet's lineage",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(pet.LineageGummy), string(pet.LineageChocolate)},
	RunE: func(cmd *cobra.Command, args []string) error {
		l, ok := pet.ParseLineage(args[0])
		if !ok {
			return fmt.Errorf("unknown lineage %q (want gummy or chocolate)", args[0])
		}
		return withSession(func(s *session) error {
			s.engine.SetPetLineage(l)
			printStatus(s.engine)
			return nil
		})
	},
}

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Play a round of Jelly Bean Match to earn a rocket part",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session) error {
			won, err := minigame.Run()
			if err != nil {
				return err
			}
			if !won {
				fmt.Println("No rocket part this time. Try again!")
				return nil
			}
			evolved := s.engine.AwardMinigameWin()
			fmt.Printf("🏆 You won a rocket part! (+%d care)\n", pet.CarePointPerMinigame)
			if evolved {
				fmt.Printf("✨ Your pet evolved into a %s!\n", s.engine.State().Pet.GetFormName())
			}
			return nil
		})
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Throw away all progress and start over",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return errors.New("this deletes your pet; pass --yes to confirm")
		}
		return withSession(func(s *session) error {
			s.engine.ResetGame()
			fmt.Println("Game reset. A new egg is waiting for you.")
			return nil
		})
	},
}

var tuningCmd = &cobra.Command{
	Use:   "tuning",
	Short: "Write the default balance to the tuning file for editing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		force, _ := cmd.Flags().GetBool("force")
		if _, err := os.Stat(cfg.TuningFile); err == nil && !force {
			return fmt.Errorf("%s already exists; pass --force to overwrite", cfg.TuningFile)
		} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("check tuning file: %w", err)
		}
		if err := config.WriteTuning(cfg.TuningFile, pet.DefaultTuning()); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", cfg.TuningFile)
		return nil
	},
}

func init() {
	statsCmd.Flags().Bool("plain", false, "Print the stats card instead of opening a window")
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
	tuningCmd.Flags().Bool("force", false, "Overwrite an existing tuning file")
}
