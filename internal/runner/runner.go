package runner

import (
	"io"
	"os"
	"strings"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	fileutil "github.com/projectdiscovery/utils/file"
	updateutils "github.com/projectdiscovery/utils/update"
)

type Options struct {
	Passwords          goflags.StringSlice // Passwords to evaluate
	UserInputs         goflags.StringSlice // User-specific context words
	Output             string
	Config             string
	DictConfig         string
	Format             string
	MaxLength          int
	JSON               bool
	DisableUpdateCheck bool
	Verbose            bool
	Silent             bool
}

func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Offline password strength estimation using pattern matching and minimum-guesses search.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringSliceVarP(&opts.Passwords, "password", "p", nil, "passwords to evaluate (stdin, comma-separated, file)", goflags.FileCommaSeparatedStringSliceOptions),
		flagSet.StringSliceVarP(&opts.UserInputs, "user-input", "ui", nil, "user context to penalize (name, email, company) (comma-separated, file)", goflags.FileCommaSeparatedStringSliceOptions),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.Output, "output", "o", "", "output file to write results"),
		flagSet.BoolVarP(&opts.JSON, "json", "j", false, "write full results as json lines"),
		flagSet.StringVarP(&opts.Format, "format", "fm", "", "custom result line format (ex: '{{password}} {{score}} {{guesses}}')"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
		flagSet.CallbackVar(printVersion, "version", "display passmeter version"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.Config, "config", "", `passmeter cli config file (default '$HOME/.config/passmeter/config.yaml')`),
		flagSet.StringVarP(&opts.DictConfig, "dict-config", "dc", "", "yaml file with extra ranked dictionaries to merge over the frozen set"),
		flagSet.IntVarP(&opts.MaxLength, "max-length", "ml", 0, "truncate passwords longer than this before evaluation (default 72)"),
	)

	flagSet.CreateGroup("update", "Update",
		flagSet.CallbackVarP(GetUpdateCallback(), "update", "up", "update passmeter to latest version"),
		flagSet.BoolVarP(&opts.DisableUpdateCheck, "disable-update-check", "duc", false, "disable automatic passmeter update check"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if opts.Config != "" {
		if err := flagSet.MergeConfigFile(opts.Config); err != nil {
			gologger.Error().Msgf("failed to read config file got %v", err)
		}
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	showBanner()

	if !opts.DisableUpdateCheck {
		latestVersion, err := updateutils.GetVersionCheckCallback("passmeter")()
		if err != nil {
			if opts.Verbose {
				gologger.Error().Msgf("passmeter version check failed: %v", err.Error())
			}
		} else {
			gologger.Info().Msgf("Current passmeter version %v %v", version, updateutils.GetVersionDescription(version, latestVersion))
		}
	}

	// read from stdin
	if fileutil.HasStdin() {
		bin, err := io.ReadAll(os.Stdin)
		if err != nil {
			gologger.Error().Msgf("failed to read input from stdin got %v", err)
		}
		opts.Passwords = strings.Fields(string(bin))
	}

	if len(opts.Passwords) == 0 {
		gologger.Fatal().Msgf("passmeter: no input found")
	}

	return opts
}

func printVersion() {
	gologger.Info().Msgf("Current version: %s", version)
	os.Exit(0)
}
