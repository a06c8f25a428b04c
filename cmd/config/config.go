// Package config wires viper configuration into the note service.
package config

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mattsolo1/noxe/pkg/models"
	"github.com/mattsolo1/noxe/pkg/service"
)

var cfgFile string

// InitConfig sets up viper: config file discovery, NOXE_* environment
// variables, and defaults. Called once from the root command.
func InitConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		configDir := filepath.Join(home, ".config", "noxe")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("NOXE")
	_ = viper.BindEnv("dir")
	_ = viper.BindEnv("author")
	_ = viper.BindEnv("type")
	_ = viper.BindEnv("template")

	// Set defaults
	viper.SetDefault("dir", ".")
	viper.SetDefault("type", string(models.NoteTypeTypst))
	viper.SetDefault("editor", defaultEditor())

	if err := viper.ReadInConfig(); err == nil {
		logrus.WithField("config", viper.ConfigFileUsed()).Debug("loaded config file")
	}
}

func defaultEditor() []string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return []string{editor}
	}
	return []string{"vim"}
}

// InitService builds the service from the resolved configuration.
func InitService() (*service.Service, error) {
	noteType, err := models.ParseNoteType(viper.GetString("type"))
	if err != nil {
		return nil, err
	}

	cfg := &service.Config{
		NoteDir:         viper.GetString("dir"),
		Author:          viper.GetString("author"),
		DefaultType:     noteType,
		TemplatePath:    viper.GetString("template"),
		PreviewTypst:    viper.GetStringSlice("preview_typst"),
		PreviewMarkdown: viper.GetStringSlice("preview_markdown"),
		Editor:          viper.GetStringSlice("editor"),
	}

	return service.New(cfg), nil
}

// AddGlobalFlags registers flags shared by every subcommand.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/noxe/config.yaml)")
	cmd.PersistentFlags().StringP("dir", "d", ".", "The directory where the notes are stored")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	_ = viper.BindPFlag("dir", cmd.PersistentFlags().Lookup("dir"))
	_ = viper.BindPFlag("verbose", cmd.PersistentFlags().Lookup("verbose"))
}
