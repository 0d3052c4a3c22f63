package cmd

import (
	"fmt"
	"os"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jake-scott/tesla-wallmon/internal/pkg/logging"
)

var _rootCmdOpts struct {
	cfgFile    string
	debug      bool
	continuous bool
	delay      int
	logFile    string
	timeout    time.Duration
}

var rootCmd = &cobra.Command{
	Use:   "tesla-wallmon <address> <command>",
	Short: "Monitor a Tesla Wall Connector",
	Long: `Query a Tesla Wall Connector's local HTTP status API and print the
result. <command> is one of lifetime, version, vitals or wifi_status
and may be abbreviated to any unique prefix. The vitals command can
also run continuously with --monitor, redrawing the display until
ESC, q or an interrupt.`,
	Args: cobra.ExactArgs(2),

	RunE: func(cmd *cobra.Command, args []string) error {
		// usage help for flag errors only, not runtime failures
		cmd.SilenceUsage = true

		return doMonitor(args[0], args[1])
	},
}

// Execute runs the root command; cobra prints the error, we set the
// exit status
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&_rootCmdOpts.cfgFile, "config", "", "config file (default is $HOME/.tesla-wallmon.yaml)")
	rootCmd.PersistentFlags().BoolVar(&_rootCmdOpts.debug, "debug", false, "enable debug logging")

	rootCmd.Flags().BoolVarP(&_rootCmdOpts.continuous, "monitor", "m", false, "poll continuously with a live display (vitals only)")
	rootCmd.Flags().IntVarP(&_rootCmdOpts.delay, "delay", "d", 5, "seconds between polls in monitor mode")
	rootCmd.Flags().StringVarP(&_rootCmdOpts.logFile, "log-file", "l", "", "append each raw response to this file")
	rootCmd.Flags().DurationVar(&_rootCmdOpts.timeout, "timeout", time.Second*10, "maximum duration of one device request, eg. 1m or 10s")

	errPanic(viper.GetViper().BindPFlag("monitor.continuous", rootCmd.Flags().Lookup("monitor")))
	errPanic(viper.GetViper().BindPFlag("monitor.delay", rootCmd.Flags().Lookup("delay")))
	errPanic(viper.GetViper().BindPFlag("monitor.log-file", rootCmd.Flags().Lookup("log-file")))
	errPanic(viper.GetViper().BindPFlag("wallconnector.timeout", rootCmd.Flags().Lookup("timeout")))
	errPanic(viper.GetViper().BindPFlag("logging.debug", rootCmd.PersistentFlags().Lookup("debug")))
}

func initConfig() {
	if _rootCmdOpts.cfgFile != "" {
		viper.SetConfigFile(_rootCmdOpts.cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".tesla-wallmon")
	}

	viper.SetEnvPrefix("WALLMON")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		logging.Logger().Debugf("Using config file: %s", viper.ConfigFileUsed())
	}

	if viper.GetBool("logging.debug") {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if err := logging.Configure(viper.GetViper()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func errPanic(err error) {
	if err != nil {
		panic(err)
	}
}
