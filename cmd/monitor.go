package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/jake-scott/tesla-wallmon/internal/pkg/command"
	"github.com/jake-scott/tesla-wallmon/internal/pkg/logging"
	"github.com/jake-scott/tesla-wallmon/internal/pkg/monitor"
	"github.com/jake-scott/tesla-wallmon/internal/pkg/polllog"
	"github.com/jake-scott/tesla-wallmon/internal/pkg/wallconnector"
)

func doMonitor(addr, token string) error {
	cmd, err := command.Resolve(token)
	if err != nil {
		return err
	}

	continuous := viper.GetBool("monitor.continuous")
	delay := viper.GetInt("monitor.delay")
	timeout := viper.GetDuration("wallconnector.timeout")
	logPath := viper.GetString("monitor.log-file")

	if continuous && cmd != command.Vitals {
		return fmt.Errorf("--monitor is only supported for the vitals command, not %s", cmd)
	}

	client := wallconnector.NewLiveClient(addr).WithTimeout(timeout)

	m := monitor.New(client).WithDelay(time.Duration(delay) * time.Second)

	if logPath != "" {
		respLog, err := polllog.Open(logPath)
		if err != nil {
			return err
		}
		defer respLog.Close()

		m = m.WithResponseLog(respLog)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		<-c
		cancel()
	}()

	if continuous {
		logging.Logger().Debugf("monitoring %s every %ds", addr, delay)
		if err := m.Watch(ctx, cmd); err != nil {
			return errors.Wrap(err, "monitoring")
		}
		return nil
	}

	return m.RunOnce(ctx, cmd)
}
