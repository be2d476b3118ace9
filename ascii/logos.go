// Package ascii provides the distribution logos drawn beside the banner.
// Logos are color-coded using ANSI escape sequences for terminal display.
package ascii

import (
	"strings"

	"sysbanner/sysinfo"
)

// Short names for the palette the artwork is drawn with.
const (
	reset       = sysinfo.ColorReset
	red         = sysinfo.ColorRed
	redBold     = sysinfo.ColorRedBold
	green       = sysinfo.ColorGreen
	greenBold   = sysinfo.ColorGreenBold
	yellow      = sysinfo.ColorYellow
	yellowBold  = sysinfo.ColorYellowBold
	blue        = sysinfo.ColorBlue
	blueBold    = sysinfo.ColorBlueBold
	magenta     = sysinfo.ColorPurple
	magentaBold = sysinfo.ColorPurpleBold
	cyanBold    = sysinfo.ColorCyanBold
	white       = sysinfo.ColorWhite
	whiteBold   = sysinfo.ColorWhiteBold
	blackBold   = sysinfo.ColorBlackBold
	blackBright = sysinfo.ColorBlackBright
	bgYellow    = sysinfo.BgYellow
	bgWhite     = sysinfo.BgWhite
)

// logos maps each distribution to its artwork. Manjaro ARM shares the
// Manjaro logo.
var logos = map[sysinfo.Distro]func() []string{
	sysinfo.Arch:       archLogo,
	sysinfo.BunsenLabs: bunsenLabsLogo,
	sysinfo.CrunchBang: crunchBangLogo,
	sysinfo.CentOS:     centOSLogo,
	sysinfo.Debian:     debianLogo,
	sysinfo.Elementary: elementaryLogo,
	sysinfo.Fedora:     fedoraLogo,
	sysinfo.FreeBSD:    freeBSDLogo,
	sysinfo.Kubuntu:    kubuntuLogo,
	sysinfo.Linuxmint:  linuxmintLogo,
	sysinfo.MacOS:      macOSLogo,
	sysinfo.Manjaro:    manjaroLogo,
	sysinfo.ManjaroARM: manjaroLogo,
	sysinfo.Neon:       neonLogo,
	sysinfo.PopOS:      popOSLogo,
	sysinfo.Raspbian:   raspbianLogo,
	sysinfo.Ubuntu:     ubuntuLogo,
	sysinfo.Zorin:      zorinLogo,
}

// GetLogo returns the ASCII art logo for a distribution.
//
// Parameters:
//   - d: The distribution to draw
//
// Returns:
//   - A fresh slice of strings, one per line of art
//   - The Tux penguin for Unknown or any distribution without artwork
//
// Each line ends in a state the next line resets, so lines can be printed
// independently next to other text.
func GetLogo(d sysinfo.Distro) []string {
	if logo, ok := logos[d]; ok {
		return logo()
	}
	return tuxLogo()
}

// ColorBars returns the two rows of color swatches shown under the banner
// fields: the normal palette, then the bright one.
func ColorBars() []string {
	const bar = "▬▬▬▬▬"
	normal := []string{
		sysinfo.ColorRed, sysinfo.ColorGreen, sysinfo.ColorYellow,
		sysinfo.ColorBlue, sysinfo.ColorPurple, sysinfo.ColorCyan,
	}
	bright := []string{
		sysinfo.ColorRedBright, sysinfo.ColorGreenBright, sysinfo.ColorYellowBright,
		sysinfo.ColorBlueBright, sysinfo.ColorPurpleBright, sysinfo.ColorCyanBright,
	}

	rows := make([]string, 0, 2)
	for _, palette := range [][]string{normal, bright} {
		swatches := make([]string, len(palette))
		for i, c := range palette {
			swatches[i] = c + bar
		}
		rows = append(rows, strings.Join(swatches, " ")+reset)
	}
	return rows
}

func archLogo() []string {
	return []string{
		blueBold + "                 +",
		blueBold + "                 #",
		blueBold + "                ###",
		blueBold + "               #####",
		blueBold + "               ######",
		blueBold + "              ; #####;",
		blueBold + "             +##.#####",
		blueBold + "            +##########",
		blueBold + "           #############;",
		blueBold + "          ###############+",
		blueBold + "         #######   #######",
		blueBold + "       .######;     ;###;`\".",
		blueBold + "      .#######;     ;#####.",
		blueBold + "      #########.   .########`",
		blueBold + "     ######'           '######",
		blueBold + "    ;####                 ####;",
		blueBold + "    ##'                     '##",
		blueBold + "   #'                         `#" + reset,
	}
}

func bunsenLabsLogo() []string {
	return []string{
		white + "        `++",
		white + "      -yMMs",
		white + "    `yMMMMN`",
		white + "   -NMMMMMMm.",
		white + "  :MMMMMMMMMN-",
		white + " .NMMMMMMMMMMM/",
		white + " yMMMMMMMMMMMMM/",
		white + "`MMMMMMNMMMMMMMN.",
		white + "-MMMMN+ /mMMMMMMy",
		white + "-MMMm`   `dMMMMMM",
		white + "`MMN.     .NMMMMM.",
		white + " hMy       yMMMMM`",
		white + " -Mo       +MMMMN",
		white + "  /o       +MMMMs",
		white + "           +MMMN`",
		white + "           hMMM:",
		white + "          `NMM/",
		white + "          +MN:",
		white + "          mh.",
		white + "         -/" + reset,
	}
}

func crunchBangLogo() []string {
	return []string{
		white + "                  ___       ___      _",
		white + "                 /  /      /  /     | |",
		white + "                /  /      /  /      | |",
		white + "               /  /      /  /       | |",
		white + "       _______/  /______/  /______  | |",
		white + "      /______   _______   _______/  | |",
		white + "            /  /      /  /          | |",
		white + "           /  /      /  /           | |",
		white + "          /  /      /  /            | |",
		white + "   ______/  /______/  /______       | |",
		white + "  /_____   _______   _______/       | |",
		white + "       /  /      /  /               | |",
		white + "      /  /      /  /                |_|",
		white + "     /  /      /  /                  _ ",
		white + "    /  /      /  /                  | |",
		white + "   /__/      /__/                   |_|" + reset,
	}
}

func centOSLogo() []string {
	return []string{
		yellowBold + "                 ..",
		yellowBold + "               .PLTJ.",
		yellowBold + "              <><><><>",
		greenBold + "     KKSSV' 4KKK " + yellowBold + "LJ" + magentaBold + " KKKL.'VSSKK",
		greenBold + "     KKV' 4KKKKK " + yellowBold + "LJ" + magentaBold + " KKKKAL 'VKK",
		greenBold + "     V' ' 'VKKKK " + yellowBold + "LJ$" + magentaBold + " KKKKV' ' 'V",
		greenBold + "     .4MA.' 'VKK " + yellowBold + "LJ" + magentaBold + " KKV' '.4Mb.",
		magentaBold + "   . " + greenBold + "KKKKKA.' 'V " + yellowBold + "LJ" + magentaBold + " V' '.4KKKKK " + blueBold + ".",
		magentaBold + " .4D " + greenBold + "KKKKKKKA.'' " + yellowBold + "LJ" + magentaBold + " ''.4KKKKKKK " + blueBold + "FA.",
		magentaBold + "<QDD ++++++++++++  " + blueBold + "++++++++++++ GFD>",
		magentaBold + " 'VD " + blueBold + "KKKKKKKK'.. " + greenBold + "LJ " + yellowBold + "..'KKKKKKKK " + blueBold + "FV",
		magentaBold + "   ' " + blueBold + "VKKKKK'. .4 " + greenBold + "LJ " + yellowBold + "K. .'KKKKKV " + blueBold + "'",
		blueBold + "      'VK'. .4KK " + greenBold + "LJ " + yellowBold + "KKA. .'KV'",
		blueBold + "     A. . .4KKKK " + greenBold + "LJ " + yellowBold + "KKKKA. . .4",
		blueBold + "     KKA. 'KKKKK " + greenBold + "LJ " + yellowBold + "KKKKK' .4KK",
		blueBold + "     KKSSA. VKKK " + greenBold + "LJ " + yellowBold + "KKKV .4SSKK",
		greenBold + "              <><><><>",
		greenBold + "               'MKKM'",
		greenBold + "                 ''" + reset,
	}
}

func debianLogo() []string {
	return []string{
		whiteBold + "         _,met$$$$$gg.",
		whiteBold + "      ,g$$$$$$$$$$$$$$$P.",
		whiteBold + "    ,g$$P\"     \"\"\"Y$$.\".",
		whiteBold + "    ,$$P'              `$$$.",
		whiteBold + "  ',$$P       ,ggs.     `$$b:",
		whiteBold + "  `d$$'     ,$P\"'   " + redBold + "." + whiteBold + "    $$$",
		whiteBold + "   $$P      d$'     " + redBold + "," + whiteBold + "    $$P",
		whiteBold + "   $$:      $$.   " + redBold + "-" + whiteBold + "    ,d$$'",
		whiteBold + "   $$;      Y$b._   _,d$P'",
		whiteBold + "   Y$$.    " + redBold + "`." + whiteBold + "`\"Y$$$$P\"'",
		whiteBold + "   `$$b      " + redBold + "\"-.__",
		whiteBold + "    `Y$$",
		whiteBold + "     `Y$$.",
		whiteBold + "       `$$b.",
		whiteBold + "         `Y$$b.",
		whiteBold + "            `\"Y$b._",
		whiteBold + "                `\"\"\"" + reset,
	}
}

func elementaryLogo() []string {
	return []string{
		blue + "           eeeeeeeeeeeeeeeee",
		blue + "        eeeeeeeeeeeeeeeeeeeeeee",
		blue + "      eeeee  eeeeeeeeeeee   eeeee",
		blue + "    eeee   eeeee       eee     eeee",
		blue + "   eeee   eeee          eee     eeee",
		blue + "  eee    eee            eee       eee",
		blue + "  eee   eee            eee        eee",
		blue + "  ee    eee           eeee       eeee",
		blue + "  ee    eee         eeeee      eeeeee",
		blue + "  ee    eee       eeeee      eeeee ee",
		blue + "  eee   eeee   eeeeee      eeeee  eee",
		blue + "  eee    eeeeeeeeee     eeeeee    eee",
		blue + "   eeeeeeeeeeeeeeeeeeeeeeee    eeeee",
		blue + "    eeeeeeee eeeeeeeeeeee      eeee",
		blue + "      eeeee                 eeeee",
		blue + "        eeeeeee         eeeeeee",
		blue + "           eeeeeeeeeeeeeeeee" + reset,
	}
}

func fedoraLogo() []string {
	return []string{
		blue + "             :/------------://",
		blue + "          :------------------://",
		blue + "        :-----------" + whiteBold + "/shhdhyo/" + blue + "-://",
		blue + "      /-----------" + whiteBold + "omMMMNNNMMMd/" + blue + "-:/",
		blue + "     :-----------" + whiteBold + "sMMMdo:/" + blue + "       -:/",
		blue + "    :-----------" + whiteBold + ":MMMd" + blue + "-------    --:/",
		blue + "    /-----------" + whiteBold + ":MMMy" + blue + "-------    ---/",
		blue + "   :------    --" + whiteBold + "/+MMMh/" + blue + "--        ---:",
		blue + "   :---     " + whiteBold + "oNMMMMMMMMMNho" + blue + "     -----:",
		blue + "   :--      " + whiteBold + "+shhhMMMmhhy++" + blue + "   ------:",
		blue + "   :-      -----" + whiteBold + ":MMMy" + blue + "--------------/",
		blue + "   :-     ------" + whiteBold + "/MMMy" + blue + "-------------:",
		blue + "   :-      ----" + whiteBold + "/hMMM+" + blue + "------------:",
		blue + "   :--" + whiteBold + ":dMMNdhhdNMMNo" + blue + "-----------:",
		blue + "   :---" + whiteBold + ":sdNMMMMNds:" + blue + "----------:",
		blue + "   :------" + whiteBold + ":://:" + blue + "-----------://",
		blue + "   :--------------------://" + reset,
	}
}

func freeBSDLogo() []string {
	return []string{
		redBold + "              ,        ,",
		redBold + "             /(        )`",
		redBold + "             \\ \\___   / |",
		redBold + "             /- " + whiteBold + "_" + redBold + "  `-/  '",
		redBold + "            (" + whiteBold + "/\\/ \\" + redBold + " \\   /\\",
		whiteBold + "            / /   |" + redBold + " `    \\",
		blueBold + "            O O   " + whiteBold + ")" + redBold + " /    |",
		whiteBold + "            `-^--'" + redBold + "`<     '",
		redBold + "           (_.)  _  )   /",
		redBold + "            `.___/`    /",
		redBold + "              `-----' /",
		yellowBold + " <----." + redBold + "     __ / __   \\",
		yellowBold + " <----|====" + redBold + "O)))" + yellowBold + "==" + redBold + ") \\) /" + yellowBold + "====",
		yellowBold + " <----'" + redBold + "    `--' `.__,' \\",
		redBold + "              |        |",
		redBold + "               \\       /      /\\",
		cyanBold + "         ______" + redBold + "( (_  / \\______/",
		cyanBold + "       ,'  ,-----'   |",
		cyanBold + "       `--(__________)" + reset,
	}
}

func kubuntuLogo() []string {
	return []string{
		blue + "             `.:/ossyyyysso/:.",
		blue + "          .:oyyyyyyyyyyyyyyyyyyo:`",
		blue + "        -oyyyyyyyo" + whiteBold + "dMMy" + blue + "yyyyyyysyyyyo-",
		blue + "      -syyyyyyyyyy" + whiteBold + "dMMy" + blue + "oyyyy" + whiteBold + "dmMMy" + blue + "yyyys-",
		blue + "     oyyys" + whiteBold + "dMy" + blue + "syyyy" + whiteBold + "dMMMMMMMMMMMMMy" + blue + "yyyyyyo",
		blue + "   `oyyyy" + whiteBold + "dMMMMy" + blue + "syysoooooo" + whiteBold + "dMMMMy" + blue + "yyyyyyyyo`",
		blue + "   oyyyyyy" + whiteBold + "dMMMMy" + blue + "yyyyyyyyyyys" + whiteBold + "dMMy" + blue + "sssssyyyo",
		blue + "  -yyyyyyyy" + whiteBold + "dMy" + blue + "syyyyyyyyyyyyyys" + whiteBold + "dMMMMMy" + blue + "syyy-",
		blue + "  oyyyysoo" + whiteBold + "dMy" + blue + "yyyyyyyyyyyyyyyyyy" + whiteBold + "dMMMMy" + blue + "syyyo",
		blue + "  yyys" + whiteBold + "dMMMMMy" + blue + "yyyyyyyyyyyyyyyyyysosyyyyyyyy",
		blue + "  yyys" + whiteBold + "dMMMMMy" + blue + "yyyyyyyyyyyyyyyyyyyyyyyyyyyyy",
		blue + "  oyyyyysos" + whiteBold + "dy" + blue + "yyyyyyyyyyyyyyyyyy" + whiteBold + "dMMMMy" + blue + "syyyo",
		blue + "  -yyyyyyyy" + whiteBold + "dMy" + blue + "syyyyyyyyyyyyyys" + whiteBold + "dMMMMMy" + blue + "syyy-",
		blue + "   oyyyyyy" + whiteBold + "dMMMy" + blue + "syyyyyyyyyyys" + whiteBold + "dMMy" + blue + "oyyyoyyyo",
		blue + "   `oyyyy" + whiteBold + "dMMMy" + blue + "syyyoooooo" + whiteBold + "dMMMMy" + blue + "oyyyyyyyyo",
		blue + "     oyyysyyoyyyys" + whiteBold + "dMMMMMMMMMMMy" + blue + "yyyyyyyo",
		blue + "      -syyyyyyyyy" + whiteBold + "dMMMy" + blue + "syyy" + whiteBold + "dMMMy" + blue + "syyyys-",
		blue + "        -oyyyyyyy" + whiteBold + "dMMy" + blue + "yyyyyysosyyyyo-",
		blue + "          ./oyyyyyyyyyyyyyyyyyyo/.",
		blue + "             `.:/oosyyyysso/:.`" + reset,
	}
}

func linuxmintLogo() []string {
	return []string{
		whiteBold + "   MMMMMMMMMMMMMMMMMMMMMMMMMmds+.",
		whiteBold + "   MMm----::-://////////////oymNMd+`",
		whiteBold + "   MMd      " + greenBold + "/++                " + whiteBold + "-sNMd:",
		whiteBold + "   MMNso/`  " + greenBold + "dMM    `.::-. .-::.` " + whiteBold + ".hMN:",
		whiteBold + "   ddddMMh  " + greenBold + "dMM   :hNMNMNhNMNMNh: `" + whiteBold + "NMm",
		whiteBold + "       NMm  " + greenBold + "dMM  .NMN/-+MMM+-/NMN` " + whiteBold + "dMM",
		whiteBold + "       NMm  " + greenBold + "dMM  -MMm  `MMM   dMM. " + whiteBold + "dMM",
		whiteBold + "       NMm  " + greenBold + "dMM  -MMm  `MMM   dMM. " + whiteBold + "dMM",
		whiteBold + "       NMm  " + greenBold + "dMM  .mmd  `mmm   yMM. " + whiteBold + "dMM",
		whiteBold + "       NMm  " + greenBold + "dMM`  ..`   ...   ydm. " + whiteBold + "dMM",
		whiteBold + "       hMM-  " + greenBold + "+MMd/-------...-:sdds " + whiteBold + "MMM",
		whiteBold + "       -NMm-  " + greenBold + ":hNMNNNmdddddddddy/` " + whiteBold + "dMM",
		whiteBold + "        -dMNs-``" + greenBold + "-::::-------.``    " + whiteBold + "dMM",
		whiteBold + "         `/dMNmy+/:-------------:/yMMM",
		whiteBold + "            ./ydNMMMMMMMMMMMMMMMMMMMMM" + reset,
	}
}

func macOSLogo() []string {
	return []string{
		green + "                     'c.",
		green + "                   ,xNMM.",
		green + "                 .OMMMMo",
		green + "                 OMMM0,",
		green + "       .;loddo:' loolloddol;.",
		green + "     cKMMMMMMMMMMNWMMMMMMMMMM0:",
		yellow + "   .KMMMMMMMMMMMMMMMMMMMMMMMWd.",
		yellow + "   XMMMMMMMMMMMMMMMMMMMMMMMX.",
		red + "  ;MMMMMMMMMMMMMMMMMMMMMMMM:",
		red + "  :MMMMMMMMMMMMMMMMMMMMMMMM:",
		red + "  .MMMMMMMMMMMMMMMMMMMMMMMMX.",
		red + "   kMMMMMMMMMMMMMMMMMMMMMMMMWd.",
		magenta + "   .XMMMMMMMMMMMMMMMMMMMMMMMMMMk",
		magenta + "    .XMMMMMMMMMMMMMMMMMMMMMMMMK.",
		blue + "      kMMMMMMMMMMMMMMMMMMMMMMd",
		blue + "       ;KMMMMMMMWXXWMMMMMMMk.",
		blue + "         .cooc,.    .,coo:." + reset,
	}
}

func manjaroLogo() []string {
	return []string{
		greenBold + "   ██████████████████  ████████",
		greenBold + "   ██████████████████  ████████",
		greenBold + "   ██████████████████  ████████",
		greenBold + "   ██████████████████  ████████",
		greenBold + "   ████████            ████████",
		greenBold + "   ████████  ████████  ████████",
		greenBold + "   ████████  ████████  ████████",
		greenBold + "   ████████  ████████  ████████",
		greenBold + "   ████████  ████████  ████████",
		greenBold + "   ████████  ████████  ████████",
		greenBold + "   ████████  ████████  ████████",
		greenBold + "   ████████  ████████  ████████",
		greenBold + "   ████████  ████████  ████████",
		greenBold + "   ████████  ████████  ████████" + reset,
	}
}

func neonLogo() []string {
	return []string{
		green + "               `..---+/---..`",
		green + "           `---.``   ``   `.---.`",
		green + "        .--.`        ``        `-:-.",
		green + "      `:/:     `.----//----.`     :/-",
		green + "     .:.    `---`          `--.`    .:`",
		green + "    .:`   `--`                .:-    `:.",
		green + "   `/    `:.      `.-::-.`      -:`   `/`",
		green + "   /.    /.     `:++++++++:`     .:    .:",
		green + "  `/    .:     `+++++++++++/      /`   `+`",
		green + "  /+`   --     .++++++++++++`     :.   .+:",
		green + "  `/    .:     `+++++++++++/      /`   `+`",
		green + "   /`    /.     `:++++++++:`     .:    .:",
		green + "   ./    `:.      `.:::-.`      -:`   `/`",
		green + "    .:`   `--`                .:-    `:.",
		green + "     .:.    `---`          `--.`    .:`",
		green + "      `:/:     `.----//----.`     :/-",
		green + "        .-:.`        ``        `-:-.",
		green + "           `---.``   ``   `.---.`",
		green + "               `..---+/---..`" + reset,
	}
}

func popOSLogo() []string {
	return []string{
		cyanBold + "               /////////////",
		cyanBold + "           /////////////////////",
		cyanBold + "        ///////" + whiteBold + "*767" + cyanBold + "////////////////",
		cyanBold + "      //////" + whiteBold + "7676767676*" + cyanBold + "//////////////",
		cyanBold + "     /////" + whiteBold + "76767" + cyanBold + "//" + whiteBold + "7676767" + cyanBold + "//////////////",
		cyanBold + "    /////" + whiteBold + "767676" + cyanBold + "///" + whiteBold + "*76767" + cyanBold + "///////////////",
		cyanBold + "   ///////" + whiteBold + "767676" + cyanBold + "///" + whiteBold + "76767" + cyanBold + ".///" + whiteBold + "7676*" + cyanBold + "///////",
		cyanBold + "  /////////" + whiteBold + "767676" + cyanBold + "//" + whiteBold + "76767" + cyanBold + "///" + whiteBold + "767676" + cyanBold + "////////",
		cyanBold + "  //////////" + whiteBold + "76767676767" + cyanBold + "////" + whiteBold + "76767" + cyanBold + "/////////",
		cyanBold + "  ///////////" + whiteBold + "76767676" + cyanBold + "//////" + whiteBold + "7676" + cyanBold + "//////////",
		cyanBold + "  ////////////," + whiteBold + "7676" + cyanBold + ",///////" + whiteBold + "767" + cyanBold + "///////////",
		cyanBold + "  /////////////*" + whiteBold + "7676" + cyanBold + "///////" + whiteBold + "76" + cyanBold + "////////////",
		cyanBold + "  ///////////////" + whiteBold + "7676" + cyanBold + "////////////////////",
		cyanBold + "   ///////////////" + whiteBold + "7676" + cyanBold + "///" + whiteBold + "767" + cyanBold + "////////////",
		cyanBold + "    //////////////////////" + whiteBold + "'" + cyanBold + "////////////",
		cyanBold + "     //////" + whiteBold + ".7676767676767676767," + cyanBold + "//////",
		cyanBold + "      /////" + whiteBold + "767676767676767676767" + cyanBold + "/////",
		cyanBold + "        ///////////////////////////",
		cyanBold + "           /////////////////////",
		cyanBold + "               /////////////" + reset,
	}
}

func raspbianLogo() []string {
	return []string{
		greenBold + "    `.::///+:/-.        --///+//-:``",
		greenBold + "   `+oooooooooooo:   `+oooooooooooo:",
		greenBold + "    /oooo++//ooooo:  ooooo+//+ooooo.",
		greenBold + "    `+ooooooo:-:oo-  +o+::/ooooooo:",
		greenBold + "     `:oooooooo+``    `.oooooooo+-",
		greenBold + "       `:++ooo/.        :+ooo+/.`",
		redBold + "          ...`  `.----.` ``..",
		redBold + "       .::::-``:::::::::.`-:::-`",
		redBold + "      -:::-`   .:::::::-`  `-:::-",
		redBold + "     `::.  `.--.`  `` `.---.``.::`",
		redBold + "         .::::::::`  -::::::::` `",
		redBold + "   .::` .:::::::::- `::::::::::``::.",
		redBold + "  -:::` ::::::::::.  ::::::::::.`:::-",
		redBold + "  ::::  -::::::::.   `-::::::::  ::::",
		redBold + "  -::-   .-:::-.``....``.-::-.   -::-",
		redBold + "   .. ``       .::::::::.     `..`..",
		redBold + "     -:::-`   -::::::::::`  .:::::`",
		redBold + "     :::::::` -::::::::::` :::::::.",
		redBold + "     .:::::::  -::::::::. ::::::::",
		redBold + "      `-:::::`   ..--.`   ::::::.",
		redBold + "        `...`  `...--..`  `...`",
		redBold + "              .::::::::::",
		redBold + "               `.-::::-`" + reset,
	}
}

func ubuntuLogo() []string {
	return []string{
		redBold + "               .-/+oossssoo+/-.",
		redBold + "           `:+ssssssssssssssssss+:`",
		redBold + "         -+ssssssssssssssssssyyssss+-",
		redBold + "       .ossssssssssssssssss" + whiteBold + "dMMMNy" + redBold + "sssso.",
		redBold + "      /sssssssssss" + whiteBold + "hdmmNNmmyNMMMMh" + redBold + "ssssss/",
		redBold + "     +sssssssss" + whiteBold + "hm" + redBold + "yd" + whiteBold + "MMMMMMMNddddy" + redBold + "ssssssss+",
		redBold + "    /ssssssss" + whiteBold + "hNMMM" + redBold + "yh" + whiteBold + "hyyyyhmNMMMNh" + redBold + "ssssssss/",
		redBold + "   .ssssssss" + whiteBold + "dMMMNh" + redBold + "ssssssssss" + whiteBold + "hNMMMd" + redBold + "ssssssss.",
		redBold + "   +ssss" + whiteBold + "hhhyNMMNy" + redBold + "ssssssssssss" + whiteBold + "yNMMMy" + redBold + "sssssss+",
		redBold + "   oss" + whiteBold + "yNMMMNyMMh" + redBold + "ssssssssssssss" + whiteBold + "hmmmh" + redBold + "ssssssso",
		redBold + "   oss" + whiteBold + "yNMMMNyMMh" + redBold + "sssssssssssssshmmmhssssssso",
		redBold + "   +ssss" + whiteBold + "hhhyNMMNy" + redBold + "ssssssssssss" + whiteBold + "yNMMMy" + redBold + "sssssss+",
		redBold + "   .ssssssss" + whiteBold + "dMMMNh" + redBold + "ssssssssss" + whiteBold + "hNMMMd" + redBold + "ssssssss.",
		redBold + "    /ssssssss" + whiteBold + "hNMMM" + redBold + "yh" + whiteBold + "hyyyyhdNMMMNh" + redBold + "ssssssss/",
		redBold + "     +sssssssss" + whiteBold + "dm" + redBold + "yd" + whiteBold + "MMMMMMMMddddy" + redBold + "ssssssss+",
		redBold + "      /sssssssssss" + whiteBold + "hdmNNNNmyNMMMMh" + redBold + "ssssss/",
		redBold + "     .ossssssssssssssssss" + whiteBold + "dMMMNy" + redBold + "sssso.",
		redBold + "         -+sssssssssssssssss" + whiteBold + "yyy" + redBold + "ssss+-",
		redBold + "           `:+ssssssssssssssssss+:`",
		redBold + "               .-/+oossssoo+/-." + reset,
	}
}

func zorinLogo() []string {
	return []string{
		blue + "          `osssssssssssssssssssso`",
		blue + "         .osssssssssssssssssssssso.",
		blue + "        .+oooooooooooooooooooooooo+.",
		blue,
		blue,
		blue + "    `::::::::::::::::::::::.         .:`",
		blue + "   `+ssssssssssssssssss+:.`     `.:+ssso`",
		blue + "  .ossssssssssssssso/.       `-+ossssssso.",
		blue + "  ssssssssssssso/-`      `-/osssssssssssss",
		blue + "  .ossssssso/-`      .-/ossssssssssssssso.",
		blue + "   `+sss+:.      `.:+ssssssssssssssssss+`",
		blue + "    `:.         .::::::::::::::::::::::`",
		blue,
		blue,
		blue + "        .+oooooooooooooooooooooooo+.",
		blue + "         -osssssssssssssssssssssso-",
		blue + "          `osssssssssssssssssssso`" + reset,
	}
}

func tuxLogo() []string {
	return []string{
		blackBold + reset + blackBright + "               ▄█████▄",
		blackBold + reset + blackBright + "              █████████",
		blackBold + reset + blackBright + "             " + bgWhite + "████████▀██" + reset + blackBright,
		blackBold + reset + blackBright + "            " + bgWhite + "██████████▄██" + reset + blackBright,
		blackBold + reset + blackBright + "            " + bgWhite + "██▀▀███▀▀████" + reset + blackBright,
		blackBold + reset + blackBright + "            " + bgWhite + "████ █ ██ ███" + reset + blackBright,
		blackBold + reset + blackBright + "            " + bgYellow + "█         ████" + reset + blackBright,
		blackBold + reset + blackBright + "            " + bgYellow + "█       ▄ ████" + reset + blackBright,
		blackBold + reset + blackBright + "            " + bgYellow + "███▀▀▀▀▀▄" + bgWhite + "▀████" + reset + blackBright,
		blackBold + reset + blackBright + "            " + bgWhite + "██▀▀▀▀▀▀   ███" + reset + blackBright + "▄",
		blackBold + reset + blackBright + "          ▄█" + bgWhite + "▀          █████" + reset + blackBright,
		blackBold + reset + blackBright + "         " + bgWhite + "███           ██████" + reset + blackBright,
		blackBold + reset + blackBright + "        " + bgWhite + "███             ██████" + reset + blackBright,
		blackBold + reset + blackBright + "       " + bgWhite + "█▀██              ██████" + reset + blackBright,
		blackBold + reset + blackBright + "       " + bgWhite + "█ █               █ ████" + reset + blackBright,
		blackBold + reset + blackBright + "       " + bgWhite + "█ █               ██ ███" + reset + blackBright,
		blackBold + reset + blackBright + "      " + bgWhite + "██ ▀               █▀ ████" + reset + blackBright,
		blackBold + reset + blackBright + "      " + bgWhite + "███                   ████" + reset + blackBright,
		blackBold + reset + blackBright + "     " + bgWhite + "█████               ███ ███" + reset + blackBright,
		blackBold + reset + blackBright + "     " + bgYellow + "█▀▀███" + bgWhite + "             █████████" + reset + blackBright,
		blackBold + reset + blackBright + "    ▄" + bgYellow + "█   ███" + bgWhite + "           █" + bgYellow + "▀ ████  ▀█" + reset + blackBright,
		blackBold + reset + blackBright + "  ▄█" + bgYellow + "▀     ████" + bgWhite + "         █" + bgYellow + "   ▀     █" + reset + blackBright,
		blackBold + reset + blackBright + " █" + bgYellow + "         ████" + bgWhite + "     █  █" + bgYellow + "         ██" + reset + blackBright,
		blackBold + reset + blackBright + "  █" + bgYellow + "         ██" + bgWhite + "       █ █" + bgYellow + "          ▀█" + reset + blackBright,
		blackBold + reset + blackBright + " █" + bgYellow + "           █" + bgWhite + "      █  █" + bgYellow + "          █" + reset + blackBright,
		blackBold + reset + blackBright + " █" + bgYellow + "           ███████████" + bgYellow + "        ▄" + reset + blackBright + "▀",
		blackBold + reset + blackBright + "  █" + bgYellow + "▄         █" + reset + blackBright + " ▀▀▀▀▀▀▀ █" + bgYellow + "      ▄" + reset + blackBright + "▀",
		blackBold + reset + blackBright + "    ▀▀▀▀▀" + bgYellow + "▄▄▄█" + reset + blackBright + "▀         ▀" + bgYellow + "▄    █" + reset + blackBright,
		blackBold + reset + blackBright + "                         ▀▀▀▀" + reset,
	}
}
