package main

import (
	"context"
	"datashare/channel"
	"datashare/contract"
	"datashare/domain"
	"datashare/infrastructure/storage"
	"datashare/infrastructure/transport"
	"datashare/internal"
	"datashare/observability"
	"datashare/projection"
	"datashare/runtime"
	"datashare/runtime/workers"
	"datashare/sink"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

const (
	convergenceTimeout = 5 * time.Second
	samplingInterval   = 20 * time.Millisecond
)

type member struct {
	container *runtime.Container
	timeline  *projection.Timeline
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run builds a small in-process group, shares one channel across it and exercises
// the pause barrier before printing what every member observed.
func run() error {
	config, err := internal.LoadConfig()
	if err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	db, err := storage.OpenInMemory()
	if err != nil {
		return fmt.Errorf("history store opening failed: %w", err)
	}
	defer func() { _ = db.Close() }()
	history := storage.NewHistoryRepository(db, log, config.HistoryLimit)
	recorder := observability.NewRecorder(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := transport.NewHub(log, domain.GroupID(config.GroupID))
	members := make([]member, 0, config.GroupSize)
	defer func() {
		for _, m := range members {
			m.container.Close()
		}
	}()

	for i := 0; i < config.GroupSize; i++ {
		m := member{
			container: runtime.NewContainer(runtime.ContainerConfig{
				Member:          domain.MemberID("member-" + strconv.Itoa(i)),
				InboxSize:       config.InboxSize,
				RestartInterval: config.RestartInterval,
				Log:             log,
			}),
			timeline: projection.NewTimeline(),
		}
		var listener contract.ChannelListener = m.timeline
		if i == 0 {
			historySink := sink.NewHistorySink(history, log, versionOf(m.container.Registry()))
			listener = sink.NewFanout(m.timeline, historySink)
		}
		m.container.Registry().RegisterFactory(channel.Kind, channel.NewFactory(channel.FactoryConfig{
			Log:          log,
			Tracer:       recorder,
			PauseTimeout: config.PauseTimeout,
			Listener:     func(domain.Descriptor) contract.ChannelListener { return listener },
		}))
		if err := m.container.Join(ctx, hub); err != nil {
			return err
		}
		members = append(members, m)
	}

	peaks := newInboxPeaks()
	samples := make(chan workers.ChannelCapacity, len(members))
	supervisor := workers.NewSupervisor(log, config.RestartInterval)
	supervisor.Add(workers.NewChannelCapacityWorker(log, lo.Map(members, func(m member, _ int) workers.NamedChannel {
		return workers.NamedChannel{Name: string(m.container.LocalMemberID()), Usage: m.container.InboxUsage}
	}), samples, samplingInterval))
	samplingCtx, stopSampling := context.WithCancel(ctx)
	defer stopSampling()
	go supervisor.Run(samplingCtx)
	go peaks.collect(samplingCtx, samples)

	host := members[0].container
	id, err := host.Registry().Create(domain.Descriptor{
		Kind: channel.Kind,
		ID:   domain.NewObjectID(),
		Home: host.LocalMemberID(),
	}, nil)
	if err != nil {
		return err
	}
	channels, err := awaitChannels(ctx, members, id)
	if err != nil {
		return err
	}

	// The host freezes the channel everywhere before anyone talks
	if err := channels[0].Pause(ctx); err != nil {
		log.Warn("Pause failed", "error", err)
	} else if err := channels[0].Resume(); err != nil {
		return err
	}

	for i, ch := range channels {
		if err := ch.SendMessage(ctx, []byte(fmt.Sprintf("hello from %s", members[i].container.LocalMemberID()))); err != nil {
			return err
		}
	}
	if err := awaitMessages(ctx, members, len(members)-1); err != nil {
		log.Warn("Group did not converge", "error", err)
	}

	stopSampling()
	printMembers(members, channels, peaks)
	return printHistory(log, history, id, recorder)
}

func versionOf(registry *runtime.Registry) func(domain.ObjectID) domain.Version {
	return func(id domain.ObjectID) domain.Version {
		obj, ok := registry.Get(id)
		if !ok {
			return domain.Version{}
		}
		ch, ok := obj.(*channel.Channel)
		if !ok {
			return domain.Version{}
		}
		return ch.Version()
	}
}

// awaitChannels waits until every member holds a READY copy of the channel.
func awaitChannels(ctx context.Context, members []member, id domain.ObjectID) ([]*channel.Channel, error) {
	ctx, cancel := context.WithTimeout(ctx, convergenceTimeout)
	defer cancel()
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()
	for {
		channels := lo.FilterMap(members, func(m member, _ int) (*channel.Channel, bool) {
			obj, ok := m.container.Registry().Get(id)
			if !ok {
				return nil, false
			}
			ch, ok := obj.(*channel.Channel)
			return ch, ok && ch.Status() == domain.StateReady
		})
		if len(channels) == len(members) {
			return channels, nil
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("channel %s replicated on %d/%d members: %w", id, len(channels), len(members), ctx.Err())
		case <-ticker.C:
		}
	}
}

func awaitMessages(ctx context.Context, members []member, expected int) error {
	ctx, cancel := context.WithTimeout(ctx, convergenceTimeout)
	defer cancel()
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()
	for {
		if lo.EveryBy(members, func(m member) bool { return len(m.timeline.Messages()) >= expected }) {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// inboxPeaks keeps the highest inbox fill level sampled per member.
type inboxPeaks struct {
	mu    sync.Mutex
	peaks map[string]int
}

func newInboxPeaks() *inboxPeaks {
	return &inboxPeaks{peaks: make(map[string]int)}
}

func (p *inboxPeaks) collect(ctx context.Context, samples <-chan workers.ChannelCapacity) {
	for {
		select {
		case <-ctx.Done():
			return
		case s := <-samples:
			p.mu.Lock()
			p.peaks[s.Name] = max(p.peaks[s.Name], s.Length)
			p.mu.Unlock()
		}
	}
}

func (p *inboxPeaks) get(name string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.peaks[name]
}

func printMembers(members []member, channels []*channel.Channel, peaks *inboxPeaks) {
	fmt.Println(color.New(color.BgBlack, color.FgGreen).Render("  ====== Members ======"))
	table := newTable("Member", "Primary", "State", "Version", "Received", "Known members", "Inbox peak")
	for i, m := range members {
		ch := channels[i]
		table.Append([]string{
			string(m.container.LocalMemberID()),
			strconv.FormatBool(ch.IsPrimary()),
			ch.Status().String(),
			ch.Version().String(),
			strconv.Itoa(len(m.timeline.Messages())),
			strconv.Itoa(len(m.timeline.Members(ch.ID()))),
			strconv.Itoa(peaks.get(string(m.container.LocalMemberID()))),
		})
	}
	table.Render()
}

func printHistory(log *slog.Logger, history storage.IHistoryRepository, id domain.ObjectID, recorder *observability.Recorder) error {
	messages, _, err := history.GetMessages(id, nil)
	if err != nil {
		return err
	}
	fmt.Println(color.New(color.BgBlack, color.FgCyan).Render("  ====== Host history ======"))
	table := newTable("At", "From", "Version", "Body")
	for _, m := range messages {
		table.Append([]string{m.At.Format(time.RFC3339Nano), string(m.From), m.Version.String(), string(m.Body)})
	}
	table.Render()

	fmt.Println(color.New(color.BgBlack, color.FgYellow).Render("  ====== Transitions ======"))
	table = newTable("Event", "Count")
	for _, name := range recorder.EventNames() {
		table.Append([]string{name, strconv.FormatUint(recorder.Count(name), 10)})
	}
	table.Render()
	log.Debug("Transitions recorded", "total", recorder.Stats().Total)
	return nil
}

func newTable(header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	return table
}
