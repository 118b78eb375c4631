package scenefile

import (
	"log"
	"os"
	"time"
)

const HOST_SERVICE_NAME = "SceneHost"

// HostService exposes a Host through net/rpc, registered under
// HOST_SERVICE_NAME.
type HostService struct {
	host   Host
	since  time.Time
	logger *log.Logger
}

func NewHostService(host Host) *HostService {
	return &HostService{
		host:   host,
		since:  time.Now(),
		logger: log.New(os.Stderr, "[rpc] ", log.LstdFlags),
	}
}

func (s *HostService) Status(args *StatusArgs, resp *Status) error {
	scene, err := s.host.SceneName()
	if err != nil {
		return err
	}
	resp.Version = SCENEFILE_VERSION
	resp.Scene = scene
	resp.Since = s.since
	return nil
}

func (s *HostService) SaveAs(args *SaveAsArgs, resp *Response) error {
	err := s.host.SaveAs(args.Path)
	if err != nil {
		s.logger.Printf("Could not save '%s': %s", args.Path, err)
	} else {
		s.logger.Printf("Saved scene to '%s'", args.Path)
	}
	resp.FromError(err)
	return nil
}

func (s *HostService) MakeDirs(args *MakeDirsArgs, resp *Response) error {
	resp.FromError(s.host.MakeDirs(args.Directory))
	return nil
}
