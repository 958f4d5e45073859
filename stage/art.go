package stage

// orcArt is the focal head
var orcArt = []string{
	`      ,      ,      `,
	`     /(.-""-.)\     `,
	` |\  \/      \/  /| `,
	` | \ / =.  .= \ / | `,
	` \( \   o\/o   / )/ `,
	`  \_, '-/  \-' ,_/  `,
	`    /   \__/   \    `,
	`    \ \__/\__/ /    `,
	`  ___\ \|--|/ /___  `,
	" /`    \\      /    `\\ ",
	`/       '----'       \`,
}

// eyeCells are the art offsets repainted by eye effects
var eyeCells = [][2]int{{8, 4}, {11, 4}}

func artSize() (w, h int) {
	for _, line := range orcArt {
		if n := len([]rune(line)); n > w {
			w = n
		}
	}
	return w, len(orcArt)
}
