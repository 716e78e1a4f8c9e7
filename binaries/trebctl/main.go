// trebctl is the command-line client for a trebuchet cluster: submit a
// plan, poll a job, cancel a job.
package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/trebuchetdev/trebuchet/protocol"
	"github.com/trebuchetdev/trebuchet/scheduler/client"
	"github.com/trebuchetdev/trebuchet/scheduler/domain"
)

func main() {
	var schedulerAddr string

	root := &cobra.Command{
		Use:   "trebctl",
		Short: "Trebuchet command-line client",
	}
	root.PersistentFlags().StringVar(&schedulerAddr, "scheduler_addr", "localhost:9090", "scheduler API address")

	var wait bool
	submit := &cobra.Command{
		Use:   "submit <plan.json>",
		Short: "Submit a physical plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := ioutil.ReadFile(args[0])
			if err != nil {
				return err
			}
			var plan domain.PhysicalPlan
			if err := json.Unmarshal(data, &plan); err != nil {
				return err
			}
			c, err := client.Dial(schedulerAddr)
			if err != nil {
				return err
			}
			defer c.Close()
			jobID, err := c.SubmitJob(&plan)
			if err != nil {
				return err
			}
			fmt.Println(jobID)
			if wait {
				return waitForJob(c, jobID)
			}
			return nil
		},
	}
	submit.Flags().BoolVar(&wait, "wait", false, "block until the job reaches a terminal status")

	status := &cobra.Command{
		Use:   "status <job-id>",
		Short: "Show a job's status and result locations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client.Dial(schedulerAddr)
			if err != nil {
				return err
			}
			defer c.Close()
			return printStatus(c, args[0])
		},
	}

	cancel := &cobra.Command{
		Use:   "cancel <job-id>",
		Short: "Cancel a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client.Dial(schedulerAddr)
			if err != nil {
				return err
			}
			defer c.Close()
			return c.CancelJob(args[0])
		},
	}

	root.AddCommand(submit, status, cancel)
	if err := root.Execute(); err != nil {
		log.Debug(err)
		os.Exit(1)
	}
}

func printStatus(c *client.Client, jobID string) error {
	reply, err := c.GetJobStatus(jobID)
	if err != nil {
		return err
	}
	fmt.Printf("job:    %s\nstatus: %s\n", reply.GetJobId(), reply.GetStatus())
	if e := reply.GetError(); e != nil {
		fmt.Printf("error:  %s: %s\n", e.GetKind(), e.GetMessage())
	}
	for _, loc := range reply.GetResult() {
		fmt.Printf("result: partition %d @ %s:%s (%d rows, %d bytes)\n",
			loc.GetPartition(), loc.GetAddr(), loc.GetPath(),
			loc.GetStats().GetNumRows(), loc.GetStats().GetNumBytes())
	}
	return nil
}

func waitForJob(c *client.Client, jobID string) error {
	for {
		reply, err := c.GetJobStatus(jobID)
		if err != nil {
			return err
		}
		switch reply.GetStatus() {
		case protocol.JobStatus_JOB_COMPLETED, protocol.JobStatus_JOB_FAILED, protocol.JobStatus_JOB_CANCELED:
			return printStatus(c, jobID)
		}
		time.Sleep(time.Second)
	}
}
