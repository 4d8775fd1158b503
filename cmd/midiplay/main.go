package main

import (
	"flag"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"go-midiwire/driver"
	"go-midiwire/packet"
	"go-midiwire/serial"
	"go-midiwire/smf"
	"go-midiwire/transport"
)

func main() {
	outName := flag.String("out", "", "MIDI output port name (substring match)")
	serialDev := flag.String("serial", "", "serial MIDI device instead of a system port")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if flag.NArg() != 1 {
		logrus.Fatal("usage: midiplay [-out port | -serial device] file.mid")
	}

	file := flag.Arg(0)
	data, err := os.ReadFile(file)
	if err != nil {
		logrus.Fatalf("read %q: %v", file, err)
	}

	out, closer, err := openTransport(*outName, *serialDev)
	if err != nil {
		logrus.Fatal(err)
	}
	defer closer()

	tracks := &smf.Tracks{}
	tracks.HandleSend = func(track int, p *packet.Packet) bool {
		if !out.Send(p) {
			logrus.Debugf("track %d: send refused", track)
			return false
		}
		return true
	}
	tracks.HandleStateChange = func(state smf.State) {
		logrus.Debugf("state: %v", state)
	}

	if !tracks.Load(data) {
		logrus.Fatalf("%q: not a playable MIDI file", file)
	}

	if title, ok := tracks.Tag(smf.MetaTitle); ok {
		logrus.Infof("playing %q (%d tracks)", title, tracks.TrackCount())
	} else {
		logrus.Infof("playing %s (%d tracks)", file, tracks.TrackCount())
	}

	start := time.Now()
	now := func() uint32 {
		return uint32(time.Since(start).Microseconds())
	}

	tracks.Play(now())
	for tracks.State() == smf.StatePlay {
		tracks.Run(now())
		time.Sleep(time.Millisecond)
	}

	logrus.Info("done")
}

func openTransport(outName, serialDev string) (transport.Transport, func(), error) {
	if serialDev != "" {
		dev, err := serial.Open(serialDev)
		if err != nil {
			return nil, nil, err
		}
		return dev, func() { dev.Close() }, nil
	}

	out, err := driver.FindOut(outName)
	if err != nil {
		return nil, nil, err
	}

	t, err := driver.Open(nil, out)
	if err != nil {
		return nil, nil, err
	}
	return t, t.Close, nil
}
