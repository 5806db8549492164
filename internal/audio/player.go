package audio

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// FilePlaceholder marks where the asset path goes in a player command line.
// Without it the path is appended as the last argument.
const FilePlaceholder = "{file}"

// DefaultPlayerCommand loops the asset forever without opening a window.
const DefaultPlayerCommand = "mpv --really-quiet --no-video --loop=inf " + FilePlaceholder

// ExecPlayer plays the asset through an external player process.
// Pausing stops the process; playing again restarts the track.
type ExecPlayer struct {
	argv []string
	file string
	proc *process
}

// process is a started player. done closes once Wait has returned.
type process struct {
	cmd  *exec.Cmd
	done chan struct{}
	err  error
}

func (p *process) exited() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// NewExecPlayer parses command (space separated, no quoting) for file.
func NewExecPlayer(command, file string) (*ExecPlayer, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil, ErrNoPlayerCommand
	}
	return &ExecPlayer{argv: fields, file: file}, nil
}

// Args returns the argv the player will be started with.
func (p *ExecPlayer) Args() []string {
	args := make([]string, 0, len(p.argv)+1)
	substituted := false
	for _, a := range p.argv {
		if strings.Contains(a, FilePlaceholder) {
			a = strings.ReplaceAll(a, FilePlaceholder, p.file)
			substituted = true
		}
		args = append(args, a)
	}
	if !substituted {
		args = append(args, p.file)
	}
	return args
}

// Running reports whether a player process was started and is still alive.
func (p *ExecPlayer) Running() bool { return p.proc != nil && !p.proc.exited() }

// Alive is Running under the Watcher name.
func (p *ExecPlayer) Alive() bool { return p.Running() }

func (p *ExecPlayer) Play() error {
	if p.Running() {
		return nil
	}
	if p.proc != nil {
		// Reap a player that quit by itself.
		_ = p.Pause()
	}
	if _, err := os.Stat(p.file); err != nil {
		return fmt.Errorf("%w: %w", ErrPlaybackBlocked, err)
	}
	args := p.Args()
	bin, err := exec.LookPath(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPlaybackBlocked, err)
	}
	cmd := exec.Command(bin, args[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: starting %s: %w", ErrPlaybackBlocked, args[0], err)
	}

	proc := &process{cmd: cmd, done: make(chan struct{})}
	go func() {
		proc.err = cmd.Wait()
		close(proc.done)
	}()
	p.proc = proc
	return nil
}

// Pause stops the player and waits for it to be reaped. If the player had
// already quit on its own, Pause reports that as ErrPlaybackBlocked.
func (p *ExecPlayer) Pause() error {
	if p.proc == nil {
		return nil
	}
	proc := p.proc
	p.proc = nil

	if proc.exited() {
		if proc.err != nil {
			return fmt.Errorf("%w: player exited: %w", ErrPlaybackBlocked, proc.err)
		}
		return fmt.Errorf("%w: player exited", ErrPlaybackBlocked)
	}
	if err := proc.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("stopping player: %w", err)
	}
	// The exit status of a killed player carries no information.
	<-proc.done
	return nil
}

// DisabledPlayer refuses every start. It backs --no-audio.
type DisabledPlayer struct{}

func (DisabledPlayer) Play() error  { return fmt.Errorf("%w: audio disabled", ErrPlaybackBlocked) }
func (DisabledPlayer) Pause() error { return nil }
