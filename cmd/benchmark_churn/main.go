package main

import (
	"context"
	"encoding/binary"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/delaneyj/slotparty/signals"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

const (
	itersKey   = "iters"
	repeatsKey = "repeats"
	seedKey    = "seed"
)

type churnConfig struct {
	name string
	// slots connected before the first emission
	slots  int
	groups int
	// chance that an invoked slot disconnects a random live slot
	disconnectFraction float64
	// chance that an invoked slot toggles a random live slot
	toggleFraction float64
	// slots reconnected between emissions to keep the population stable
	refill bool
}

var churnConfigs = []churnConfig{
	{
		name:   "static",
		slots:  100,
		groups: 1,
	},
	{
		name:           "toggling",
		slots:          100,
		groups:         4,
		toggleFraction: 0.1,
	},
	{
		name:               "light churn",
		slots:              100,
		groups:             4,
		disconnectFraction: 0.01,
		refill:             true,
	},
	{
		name:               "heavy churn",
		slots:              1000,
		groups:             16,
		disconnectFraction: 0.05,
		toggleFraction:     0.05,
		refill:             true,
	},
	{
		name:               "drain",
		slots:              10_000,
		groups:             8,
		disconnectFraction: 0.2,
	},
}

func main() {
	cmd := &cli.Command{
		Name:  "benchmark_churn",
		Usage: "Measure emission while slots connect, disconnect and toggle mid-emission",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  itersKey,
				Usage: "Emissions per run",
				Value: 2_000,
			},
			&cli.UintFlag{
				Name:  repeatsKey,
				Usage: "Runs per configuration, checksums must agree",
				Value: 5,
			},
			&cli.IntFlag{
				Name:  seedKey,
				Usage: "Seed for the churn schedule",
				Value: 1,
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	log.Print("Starting churn benchmark, please wait...")
	defer log.Print("Finished churn benchmark")

	iters := int(cmd.Uint(itersKey))
	repeats := int(cmd.Uint(repeatsKey))
	seed := int64(cmd.Int(seedKey))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"config", "slots", "groups", "nTimes", "calls", "live", "time", "emitRate", "checksum",
	})

	for _, cfg := range churnConfigs {
		log.Printf("Running '%s' config", cfg.name)

		var first churnResult
		var best time.Duration
		for i := 0; i < repeats; i++ {
			res := runChurn(cfg, iters, seed)
			if i == 0 {
				first = res
				best = res.duration
				continue
			}
			if res.checksum != first.checksum || res.calls != first.calls {
				return fmt.Errorf("%s: run %d diverged: checksum %x calls %d, want %x calls %d",
					cfg.name, i, res.checksum, res.calls, first.checksum, first.calls)
			}
			best = min(best, res.duration)
		}

		emitRate := float64(iters) / best.Seconds()
		table.Append([]string{
			cfg.name,
			humanize.Comma(int64(cfg.slots)),
			humanize.Comma(int64(cfg.groups)),
			humanize.Comma(int64(iters)),
			humanize.Comma(first.calls),
			humanize.Comma(int64(first.live)),
			best.String(),
			humanize.Comma(int64(emitRate)),
			fmt.Sprintf("%016x", first.checksum),
		})
	}
	table.Render()
	return nil
}

type churnResult struct {
	calls    int64
	live     int
	checksum uint64
	duration time.Duration
}

type churnSlot struct {
	id   int
	conn signals.Connection
}

func runChurn(cfg churnConfig, iters int, seed int64) churnResult {
	rng := rand.New(rand.NewSource(seed))
	order := xxhash.New()
	live := mapset.NewThreadUnsafeSet[int]()
	off := mapset.NewThreadUnsafeSet[int]()
	slots := map[int]*churnSlot{}
	var sig signals.Void0
	var calls, settledCalls int64
	settled := false
	nextID := 0

	connect := func() {
		s := &churnSlot{id: nextID}
		nextID++
		s.conn = sig.ConnectPriority(rng.Intn(cfg.groups), func() {
			if settled {
				settledCalls++
				return
			}
			calls++
			var buf [8]byte
			binary.LittleEndian.PutUint64(buf[:], uint64(s.id))
			order.Write(buf[:])

			// ids are drawn from everything ever connected; misses are no-ops
			if rng.Float64() < cfg.disconnectFraction {
				victim := rng.Intn(nextID)
				if live.Contains(victim) {
					if !slots[victim].conn.Disconnect() {
						log.Panicf("%s: live slot %d failed to disconnect", cfg.name, victim)
					}
					live.Remove(victim)
					off.Remove(victim)
					delete(slots, victim)
				}
			}
			if rng.Float64() < cfg.toggleFraction {
				id := rng.Intn(nextID)
				if live.Contains(id) {
					c := slots[id].conn
					if off.Contains(id) {
						c.Enable()
						off.Remove(id)
					} else {
						c.Disable()
						off.Add(id)
					}
				}
			}
		})
		slots[s.id] = s
		live.Add(s.id)
	}

	for i := 0; i < cfg.slots; i++ {
		connect()
	}

	start := time.Now()
	for i := 0; i < iters; i++ {
		sig.Emit()
		if cfg.refill {
			for live.Cardinality() < cfg.slots {
				connect()
			}
		}
	}
	duration := time.Since(start)

	if n := sig.NumSlots(); n != live.Cardinality() {
		log.Panicf("%s: signal holds %d slots, %d live", cfg.name, n, live.Cardinality())
	}
	settled = true
	sig.Emit()
	if enabled := live.Difference(off).Cardinality(); settledCalls != int64(enabled) {
		log.Panicf("%s: %d slots ran after churn, %d enabled", cfg.name, settledCalls, enabled)
	}

	res := churnResult{
		calls:    calls,
		live:     live.Cardinality(),
		checksum: order.Sum64(),
		duration: duration,
	}
	sig.Close()
	return res
}
