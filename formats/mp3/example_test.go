// SPDX-License-Identifier: EPL-2.0

package mp3_test

import (
	"fmt"
	"log"
	"os"

	"github.com/ik5/sinekit/audio"
	"github.com/ik5/sinekit/formats/mp3"
	"github.com/ik5/sinekit/formats/wav"
	"github.com/ik5/sinekit/utils"
)

// ExampleDecoder_Decode opens an MP3 file through a registry and reports
// its layout.
func ExampleDecoder_Decode() {
	reg := audio.NewRegistry()
	reg.Register("mp3", mp3.Decoder{})

	f, err := os.Open("input.mp3")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := reg.Open("mp3", f)
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	fmt.Printf("%d Hz, %d channels\n", src.SampleRate(), src.Channels())
}

// Example_toWAV decodes a whole MP3 file and stores it as 16-bit WAV.
func Example_toWAV() {
	in, err := os.Open("input.mp3")
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()

	src, err := mp3.Decoder{}.Decode(in)
	if err != nil {
		log.Fatal(err)
	}
	rate := src.SampleRate()

	v, err := audio.ReadAll(src)
	if err != nil {
		log.Fatal(err)
	}

	channels := v.NumChannels()
	samples := make([]int16, 0, channels*v.NumFrames())
	for f := range v.NumFrames() {
		for c := range channels {
			samples = append(samples, utils.Float32ToInt16(v.F32().Sample(c, f)))
		}
	}

	out, err := os.Create("output.wav")
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()

	if err := wav.WritePCM16(out, rate, channels, samples); err != nil {
		log.Fatal(err)
	}
}
