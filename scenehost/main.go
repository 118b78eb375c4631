package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/rpc"
	"os"
	"os/signal"

	"github.com/formicidae-tracker/scenefile"
	"github.com/grandcat/zeroconf"
	"github.com/jessevdk/go-flags"
)

type Options struct {
	Scene   string `short:"s" long:"scene" description:"scene file to open at startup"`
	Port    int    `short:"p" long:"port" description:"port to listen on"`
	Persist bool   `long:"persist" description:"saves the resulting configuration as user default"`
}

func configure() (scenefile.HostConfiguration, error) {
	config := scenefile.GetHostConfiguration()
	opts := Options{}
	if _, err := flags.Parse(&opts); err != nil {
		return config, err
	}
	if len(opts.Scene) > 0 {
		config.Scene = opts.Scene
	}
	if opts.Port > 0 {
		config.Port = opts.Port
	}
	if opts.Persist == true {
		if err := config.Save(); err != nil {
			return config, fmt.Errorf("Could not save configuration: %s", err)
		}
	}
	return config, nil
}

func Execute() error {
	config, err := configure()
	if err != nil {
		return err
	}

	host, err := os.Hostname()
	if err != nil {
		return err
	}

	scene, err := scenefile.NewLocalHost(config.Scene)
	if err != nil {
		return err
	}

	logger := log.New(os.Stderr, "[rpc] ", log.LstdFlags)
	rpcRouter := rpc.NewServer()
	if err := rpcRouter.RegisterName(scenefile.HOST_SERVICE_NAME, scenefile.NewHostService(scene)); err != nil {
		return err
	}
	rpcServer := http.Server{
		Addr:    fmt.Sprintf(":%d", config.Port),
		Handler: rpcRouter,
	}

	server, err := zeroconf.Register(scenefile.SCENEHOST_INSTANCE_PREFIX+host, scenefile.SCENEHOST_SERVICE, scenefile.SCENEHOST_DOMAIN, config.Port, nil, nil)
	if err != nil {
		log.Printf("[avahi] register error: %s", err)
	} else {
		defer server.Shutdown()
	}

	idleConnections := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt)
		<-sigint
		if err := rpcServer.Shutdown(context.Background()); err != nil {
			logger.Printf("could not shutdown: %s", err)
		}
		close(idleConnections)
	}()

	logger.Printf("listening on %s", rpcServer.Addr)
	if err := rpcServer.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}

	<-idleConnections

	return nil
}

func main() {
	if err := Execute(); err != nil {
		if ferr, ok := err.(*flags.Error); ok == true && ferr.Type == flags.ErrHelp {
			return
		}
		log.Fatalf("Unhandled error: %s", err)
	}
}
