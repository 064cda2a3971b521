package filefilter_test

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/fardream/filefilter"
)

func orPanic(err error) {
	if err != nil {
		log.Panic(err)
	}
}

// Example selects the textures of a mod to process, skipping the ones already handled elsewhere.
func Example() {
	fsys := memfs.New()
	for _, name := range []string{
		"sprites/blocks/wall.png",
		"sprites/blocks/wall-large.PNG",
		"sprites/units/dagger.png",
		"sprites/units/dagger.aseprite",
		"sounds/shoot.ogg",
	} {
		orPanic(util.WriteFile(fsys, name, []byte(name), 0o644))
	}

	filters := filefilter.NewSet(
		filefilter.NewExtensionFilter("png"),
		filefilter.KindFilter{Kind: filefilter.KindRegular},
	)

	skipUnits := filefilter.NotFilter{Filter: filefilter.PrefixFilter{Prefix: "sprites/units/"}}
	filters.Add(skipUnits)

	orPanic(filefilter.DumpDir(context.Background(), fsys, "sprites", filters, os.Stdout))

	// adding the same filter value again changes nothing.
	filters.Add(filefilter.NotFilter{Filter: filefilter.PrefixFilter{Prefix: "sprites/units/"}})
	fmt.Println("members:", filters.Len())

	filters.Remove(skipUnits)
	orPanic(filefilter.DumpDir(context.Background(), fsys, "sprites/units", filters, os.Stdout))

	// Output:
	// sprites/blocks/wall-large.PNG
	// sprites/blocks/wall.png
	// members: 3
	// sprites/units/dagger.png
}
