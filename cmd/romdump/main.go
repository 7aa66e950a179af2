// Command romdump prints a parsed iNES ROM's header fields without
// running it, for inspecting a cartridge before loading it into
// nescore.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jfrost-dev/nescore/internal/cartridge"
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: romdump <rom-file>")
		os.Exit(1)
	}

	rom, err := cartridge.Load(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "romdump: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Mapper:      %d\n", rom.Mapper)
	fmt.Printf("Mirroring:   %s\n", rom.Mirroring)
	fmt.Printf("Battery:     %v\n", rom.Battery)
	fmt.Printf("PRG-ROM:     %d banks (%d KiB)\n", rom.PRGBanks(), len(rom.PRG)/1024)
	if rom.HasCHRRAM {
		fmt.Printf("CHR-RAM:     %d KiB\n", len(rom.CHR)/1024)
	} else {
		fmt.Printf("CHR-ROM:     %d banks (%d KiB)\n", rom.CHRBanks(), len(rom.CHR)/1024)
	}
}
