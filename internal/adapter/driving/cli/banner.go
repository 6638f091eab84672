package cli

import (
	"fmt"

	"github.com/diillson/dfc-dashboard-go/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner() {
	banner := `
         /$$$$$$$  /$$$$$$$$  /$$$$$$ 
        | $$__  $$| $$_____/ /$$__  $$
        | $$  \ $$| $$      | $$  \__/
        | $$  | $$| $$$$$   | $$      
        | $$  | $$| $$__/   | $$      
        | $$  | $$| $$      | $$    $$
        | $$$$$$$/| $$      |  $$$$$$/
        |_______/ |__/       \______/ 
        `
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(green(banner))
	fmt.Println(blue(fmt.Sprintf("DFC Dashboard CLI (v%s)", version.FormatVersion())))
}
