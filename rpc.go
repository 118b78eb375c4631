package scenefile

import (
	"errors"
	"time"
)

type Response struct {
	Error            string
	MissingDirectory string
}

func (r Response) ToError() error {
	if len(r.MissingDirectory) != 0 {
		return &MissingDirectoryError{Directory: r.MissingDirectory}
	}
	if len(r.Error) == 0 {
		return nil
	}
	return errors.New(r.Error)
}

func (r *Response) FromError(err error) {
	r.Error = ""
	r.MissingDirectory = ""
	if err == nil {
		return
	}
	r.Error = err.Error()
	var mErr *MissingDirectoryError
	if errors.As(err, &mErr) == true {
		r.MissingDirectory = mErr.Directory
	}
}

type StatusArgs struct {
	ClientVersion string
}

type Status struct {
	Version string
	Scene   string
	Since   time.Time
}

type SaveAsArgs struct {
	Path string
}

type MakeDirsArgs struct {
	Directory string
}
