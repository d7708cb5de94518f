package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/passmeter"
	"github.com/projectdiscovery/passmeter/internal/runner"
)

const defaultFormat = "{{password}} score={{score}} guesses={{guesses}} crack_time={{offline_slow_hashing}} {{warning}}"

func main() {
	cliOpts := runner.ParseFlags()

	opts := &passmeter.Options{
		UserInputs: cliOpts.UserInputs,
		MaxLength:  cliOpts.MaxLength,
	}
	if cliOpts.DictConfig != "" {
		config, err := passmeter.NewConfig(cliOpts.DictConfig)
		if err != nil {
			gologger.Fatal().Msgf("failed to read %v file got: %v", cliOpts.DictConfig, err)
		}
		opts.Dictionaries = config.Dictionaries
	}

	estimator, err := passmeter.New(opts)
	if err != nil {
		gologger.Fatal().Msgf("failed to create estimator got: %v", err)
	}

	var output io.Writer = os.Stdout
	if cliOpts.Output != "" {
		fs, err := os.OpenFile(cliOpts.Output, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			gologger.Fatal().Msgf("failed to open output file %v got %v", cliOpts.Output, err)
		}
		defer fs.Close()
		output = fs
	}

	format := cliOpts.Format
	if format == "" {
		format = defaultFormat
	}

	for _, password := range cliOpts.Passwords {
		result, err := estimator.EstimateStrict(password)
		if err != nil {
			gologger.Error().Msgf("skipping password got: %v", err)
			continue
		}
		var line string
		if cliOpts.JSON {
			bin, err := json.Marshal(result)
			if err != nil {
				gologger.Error().Msgf("failed to marshal result got: %v", err)
				continue
			}
			line = string(bin)
		} else {
			line = passmeter.FormatResult(format, result)
		}
		if _, err := output.Write([]byte(line + "\n")); err != nil {
			gologger.Fatal().Msgf("failed to write results got: %v", err)
		}
	}
}
