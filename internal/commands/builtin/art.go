package builtin

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// cowsay draws a cow saying message.
func cowsay(message string) string {
	border := strings.Repeat("-", ansi.StringWidth(message)+2)
	return " " + border + "\n" +
		"< " + message + " >\n" +
		" " + border + "\n" +
		`        \   ^__^
         \  (oo)\_______
            (__)\       )\/\
                ||----w |
                ||     ||`
}

const carArt = `
        ______
       /|_||_\` + "`" + `.__
      (   _    _ _\
      =` + "`" + `-(_)--(_)-'

  Dream garage: a '99 Integra Type R, a '91 NSX
  and something with a manual gearbox for the weekend.`

const diagnosticsArt = `
  RUNNING VEHICLE DIAGNOSTICS...

  [OK]  Engine ............ 7200 rpm redline
  [OK]  Transmission ...... 6-speed manual
  [OK]  Brakes ............ pads at 80%
  [OK]  Coffee level ...... sufficient
  [!!]  Check engine light  it's always on

  No critical faults found.`

const vtecArt = `
  ██╗   ██╗████████╗███████╗ ██████╗
  ██║   ██║╚══██╔══╝██╔════╝██╔════╝
  ██║   ██║   ██║   █████╗  ██║
  ╚██╗ ██╔╝   ██║   ██╔══╝  ██║
   ╚████╔╝    ██║   ███████╗╚██████╗
    ╚═══╝     ╚═╝   ╚══════╝ ╚═════╝

  VTEC JUST KICKED IN, YO!`

const konamiArt = `
  ↑ ↑ ↓ ↓ ← → ← → B A

  KONAMI CODE ACCEPTED
  +30 lives granted. Turbo mode engaged.`

const hackArt = `
  > Initializing hack sequence...
  > Bypassing firewall............ [DONE]
  > Decrypting mainframe.......... [DONE]
  > Downloading the internet...... [FAILED]

  ACCESS DENIED. Nice try, though.`

const coffeeArt = `
      ( (
       ) )
    ........
    |      |]
    \      /
     ` + "`" + `----'

  Coffee break! Refueling the developer...`

// matrixRain returns a few lines of falling glyphs seeded by seed.
func matrixRain(seed int64, rows, cols int) string {
	const glyphs = "01アイウエオカキクケコサシスセソ"
	runes := []rune(glyphs)
	state := uint64(seed)
	var sb strings.Builder
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			state = state*6364136223846793005 + 1442695040888963407
			if (state>>33)%3 == 0 {
				sb.WriteRune(' ')
				continue
			}
			sb.WriteRune(runes[(state>>40)%uint64(len(runes))])
		}
		if r < rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
