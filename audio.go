package main

import (
	"github.com/veandco/go-sdl2/sdl"
)

const (
	// tone sample rate and pitch
	toneRate  = 44100
	tonePitch = 440

	// samples queued per top-up, about a tenth of a second
	toneChunk = 4096
)

// Tone is the single continuous tone source, gated on and off by the
// machine's sound timer through the queued-audio API.
type Tone struct {
	device  sdl.AudioDeviceID
	buf     []byte
	playing bool
}

// NewTone opens an audio device and prepares one chunk of square wave.
func NewTone() (*Tone, error) {
	spec := &sdl.AudioSpec{
		Freq:     toneRate,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  1024,
	}

	var actual sdl.AudioSpec

	device, err := sdl.OpenAudioDevice("", false, spec, &actual, 0)
	if err != nil {
		return nil, err
	}

	// square wave around the device silence value
	buf := make([]byte, toneChunk)
	half := toneRate / tonePitch / 2

	for i := range buf {
		if i/half%2 == 0 {
			buf[i] = actual.Silence + 0x18
		} else {
			buf[i] = actual.Silence - 0x18
		}
	}

	return &Tone{
		device: device,
		buf:    buf,
	}, nil
}

// StartTone keeps the tone playing. It is called once per frame while the
// sound timer is nonzero and tops up the sample queue each time.
func (t *Tone) StartTone() {
	if sdl.GetQueuedAudioSize(t.device) < uint32(len(t.buf)) {
		sdl.QueueAudio(t.device, t.buf)
	}

	if !t.playing {
		sdl.PauseAudioDevice(t.device, false)
		t.playing = true
	}
}

// StopTone silences the tone.
func (t *Tone) StopTone() {
	if t.playing {
		sdl.PauseAudioDevice(t.device, true)
		sdl.ClearQueuedAudio(t.device)
		t.playing = false
	}
}
