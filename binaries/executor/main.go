// trebuchet-executor runs one worker: it registers with the scheduler,
// serves the task service, heartbeats on its own schedule, and deregisters
// on shutdown so its tasks requeue immediately.
package main

import (
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	uuid "github.com/nu7hatch/gouuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/trebuchetdev/trebuchet/common/log/hooks"
	"github.com/trebuchetdev/trebuchet/common/stats"
	"github.com/trebuchetdev/trebuchet/exchange"
	"github.com/trebuchetdev/trebuchet/executor"
	"github.com/trebuchetdev/trebuchet/executor/engine"
	"github.com/trebuchetdev/trebuchet/scheduler/client"
)

func main() {
	log.AddHook(hooks.NewContextHook())

	var (
		id            string
		addr          string
		schedulerAddr string
		slots         uint32
		shuffleDir    string
		heartbeat     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "trebuchet-executor",
		Short: "Trebuchet executor daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			if id == "" {
				u, err := uuid.NewV4()
				if err != nil {
					return err
				}
				id = u.String()
			}

			sched, err := client.Dial(schedulerAddr)
			if err != nil {
				return err
			}
			defer sched.Close()

			shuffle, err := exchange.NewLocalStore(shuffleDir)
			if err != nil {
				return err
			}

			l, err := net.Listen("tcp", addr)
			if err != nil {
				return err
			}

			exec := executor.New(id, l.Addr().String(), slots, engine.NewFakeEngine(), shuffle, sched, stats.DefaultStatsReceiver())
			if err := exec.Register(); err != nil {
				return err
			}
			heartbeater := executor.NewHeartbeater(exec, heartbeat)
			heartbeater.Start()

			srv := executor.NewServer(exec)
			go func() {
				sig := make(chan os.Signal, 1)
				signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
				<-sig
				log.Info("Shutting down")
				heartbeater.Stop()
				exec.Deregister()
				srv.Stop()
			}()
			return srv.Serve(l)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "executor identity (default: random uuid)")
	cmd.Flags().StringVar(&addr, "addr", "localhost:0", "bind address for the task service")
	cmd.Flags().StringVar(&schedulerAddr, "scheduler_addr", "localhost:9090", "scheduler API address")
	cmd.Flags().Uint32Var(&slots, "slots", 4, "concurrent task slots")
	cmd.Flags().StringVar(&shuffleDir, "shuffle_dir", "/var/lib/trebuchet-shuffle", "directory for shuffle output")
	cmd.Flags().DurationVar(&heartbeat, "heartbeat_interval", 3*time.Second, "heartbeat interval")

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
