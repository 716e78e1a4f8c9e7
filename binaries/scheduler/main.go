// trebuchet-scheduler runs one scheduler instance: the gRPC control plane
// plus an admin HTTP endpoint for metrics. Multiple instances pointed at
// the same store contend for the leader lease; standbys idle until
// elected.
package main

import (
	"net"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/trebuchetdev/trebuchet/common/log/hooks"
	"github.com/trebuchetdev/trebuchet/common/stats"
	"github.com/trebuchetdev/trebuchet/scheduler/api"
	"github.com/trebuchetdev/trebuchet/scheduler/server"
	"github.com/trebuchetdev/trebuchet/scheduler/store"
)

func main() {
	log.AddHook(hooks.NewContextHook())

	var (
		addr         string
		adminAddr    string
		storeDir     string
		heartbeat    time.Duration
		sweep        time.Duration
		evictionMult int
		maxAttempts  int
		leaseKey     string
		leaseTTL     time.Duration
		retention    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "trebuchet-scheduler",
		Short: "Trebuchet scheduler daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.OpenFileStore(storeDir)
			if err != nil {
				return err
			}
			defer st.Close()

			stat := stats.DefaultStatsReceiver()
			scheduler := server.NewStatefulScheduler(server.SchedulerConfiguration{
				HeartbeatInterval:  heartbeat,
				SweepInterval:      sweep,
				EvictionMultiplier: evictionMult,
				MaxTaskAttempts:    maxAttempts,
				LeaseKey:           leaseKey,
				LeaseTTL:           leaseTTL,
				Retention:          retention,
			}, st, server.NewGrpcDispatcher(), stat)
			defer scheduler.Stop()

			go serveAdmin(adminAddr, stat)

			l, err := net.Listen("tcp", addr)
			if err != nil {
				return err
			}
			return api.NewServer(scheduler).Serve(l)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "localhost:9090", "bind address for the scheduler API")
	cmd.Flags().StringVar(&adminAddr, "admin_addr", "localhost:9091", "bind address for the admin endpoint")
	cmd.Flags().StringVar(&storeDir, "store_dir", "/var/lib/trebuchet", "directory for the durable state store")
	cmd.Flags().DurationVar(&heartbeat, "heartbeat_interval", 3*time.Second, "expected executor heartbeat interval")
	cmd.Flags().DurationVar(&sweep, "sweep_interval", time.Second, "liveness sweep interval")
	cmd.Flags().IntVar(&evictionMult, "eviction_multiplier", 3, "heartbeats missed before eviction")
	cmd.Flags().IntVar(&maxAttempts, "max_task_attempts", 3, "per-task retry budget")
	cmd.Flags().StringVar(&leaseKey, "lease_key", "default", "cluster name the leader lease is keyed by")
	cmd.Flags().DurationVar(&leaseTTL, "lease_ttl", 10*time.Second, "leader lease TTL")
	cmd.Flags().DurationVar(&retention, "retention", 24*time.Hour, "terminal job retention window")

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func serveAdmin(addr string, stat stats.StatsReceiver) {
	mux := http.NewServeMux()
	mux.HandleFunc("/admin/metrics.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(stat.Render())
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.WithFields(log.Fields{"addr": addr, "err": err}).Error("Admin endpoint failed")
	}
}
