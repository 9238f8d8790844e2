// Command opencamera lists the cameras of the host and opens one of them,
// preferring a back-facing camera when none is requested.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/pion/opencamera"
	"github.com/pion/opencamera/internal/config"
	"github.com/pion/opencamera/internal/logging"
	"github.com/pion/opencamera/pkg/driver"
	"github.com/pion/opencamera/pkg/driver/camera"
	"github.com/pion/opencamera/pkg/driver/videotest"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

type flags struct {
	configPath  string
	cameraID    int
	level       int
	fake        string
	list        bool
	logLevel    string
	metricsAddr string
}

func parseFlags(args []string) (*flags, *flag.FlagSet, error) {
	f := &flags{}
	fs := flag.NewFlagSet("opencamera", flag.ContinueOnError)
	fs.StringVar(&f.configPath, "config", "", "path to a YAML config file")
	fs.IntVar(&f.cameraID, "camera", opencamera.NoRequestedCamera, "camera index to open; negative means no preference")
	fs.IntVar(&f.level, "level", 0, "override the reported platform level")
	fs.StringVar(&f.fake, "fake", "", "comma separated facings of in-memory cameras, e.g. front,back")
	fs.BoolVar(&f.list, "list", false, "list cameras and exit")
	fs.StringVar(&f.logLevel, "log-level", "", "trace, debug, info, warn, error or disabled")
	fs.StringVar(&f.metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address and hold the camera open")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs, nil
}

// loadConfig reads the config file if any, then applies flags that were set
// explicitly on the command line.
func loadConfig(f *flags, fs *flag.FlagSet) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return nil, err
		}
	}

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "camera":
			cfg.SetCameraID(f.cameraID)
		case "level":
			cfg.SetLevel(f.level)
		case "fake":
			cfg.Camera.Fake = splitList(f.fake)
		case "log-level":
			cfg.Log.Level = f.logLevel
		case "metrics-addr":
			cfg.Metrics.Addr = f.metricsAddr
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// newManager registers in-memory cameras when configured, or discovers the
// host's cameras otherwise.
func newManager(cfg *config.Config) (*driver.Manager, error) {
	facings, err := cfg.FakeFacings()
	if err != nil {
		return nil, err
	}

	m := driver.NewManager()
	if len(facings) > 0 {
		return m, videotest.Register(m, facings...)
	}
	camera.InitializeWith(m)
	return m, nil
}

func run(args []string, out io.Writer) error {
	f, fs, err := parseFlags(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(f, fs)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logging.SetLevel(cfg.Log.Level); err != nil {
		return err
	}

	m, err := newManager(cfg)
	if err != nil {
		return err
	}
	p := opencamera.NewDriverPlatform(m, opencamera.WithLevel(cfg.Level()))

	if f.list {
		return listCameras(p, out)
	}

	reg := prometheus.NewRegistry()
	metrics := opencamera.NewMetrics(reg)

	d, err := opencamera.Open(p, cfg.CameraID(), opencamera.WithMetrics(metrics))
	if err != nil {
		return fmt.Errorf("open camera: %w", err)
	}
	defer d.Close()

	info := d.Info()
	fmt.Fprintf(out, "opened %s (%s, facing %s)\n", info.Label, info.Name, info.Facing)

	if cfg.Metrics.Addr == "" {
		return nil
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return serveMetrics(ctx, cfg.Metrics.Addr, reg)
}

func listCameras(p opencamera.Platform, out io.Writer) error {
	infos, err := opencamera.Enumerate(p)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "INDEX\tFACING\tNAME\tLABEL")
	for _, info := range infos {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", info.Index, info.Facing, info.Name, info.Label)
	}
	return w.Flush()
}

func serveMetrics(ctx context.Context, addr string, reg *prometheus.Registry) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	log.Printf("serving metrics on %s, holding the camera until interrupted", addr)

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
