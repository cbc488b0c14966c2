package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/mpack"
	"github.com/rawbytedev/mpack/stream"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1
	buf := make([]byte, 0x200)
	m := new(mpack.MessagePack)
	m.InitializeStreams(0, uint32(len(buf)), buf, stream.Memcopy, stream.Memcopy)
	var payload [64]byte
	for i := 0; i < 10000; i++ {
		m.ResetCursors()
		m.StartArray(4).
			WriteUint(uint64(i)).
			WriteInt(-70000).
			WriteString("azerty").
			WriteBoolean(i%2 == 0)
		m.DecodeSingle()
		m.DecodeSingle()
		m.DecodeSingle()
		str := m.DecodeSingle()
		m.Reader().Read(str.Size, payload[:])
		m.DecodeSingle()
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
