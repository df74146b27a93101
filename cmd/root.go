package cmd

import (
	"errors"
	"log"

	"github.com/spigell/cv-ranker/internal/candidate"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "cv-ranker"
)

type Config struct {
	// DataFile points to a yaml/json file with candidates and jobs tables.
	// When unset the built-in samples are used.
	DataFile string         `mapstructure:"data-file"`
	Ranking  *RankingConfig `mapstructure:"ranking"`
	Extract  *ExtractConfig `mapstructure:"extract"`
}

type RankingConfig struct {
	Top      int    `mapstructure:"top"`
	Job      string `mapstructure:"job"`
	Skill    string `mapstructure:"skill"`
	MinYears int    `mapstructure:"min-years"`
}

type ExtractConfig struct {
	// Skills overrides the default keyword vocabulary scanned by the
	// extract commands.
	Skills []string `mapstructure:"skills"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "cv-ranker scores candidates against job descriptions and extracts structured fields from resume text",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("data-file", "CV_RANKER_DATA_FILE"); err != nil {
		log.Fatalf("binding CV_RANKER_DATA_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is cv-ranker.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)

		// An explicitly requested config file must parse.
		if err := viper.ReadInConfig(); err != nil {
			log.Fatal(err)
		}
		return
	}

	viper.AddConfigPath(".")
	viper.SetConfigName(app + ".yaml")

	// The default config file is optional: the built-in samples cover
	// everything the commands need.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}
	if config.Ranking == nil {
		config.Ranking = &RankingConfig{}
	}

	return config, nil
}

// newSource builds the candidate/job source: a configured data file when
// present, the built-in samples otherwise. The second return value names the
// origin for logging.
func newSource(config *Config) (candidate.Source, string, error) {
	if config != nil && config.DataFile != "" {
		src, err := candidate.FromFile(config.DataFile)
		return src, config.DataFile, err
	}
	return candidate.Samples(), "samples", nil
}
