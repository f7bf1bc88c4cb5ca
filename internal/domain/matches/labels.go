package matches

import "strconv"

// flagByCode maps FIFA trigrams to Slack flag emoji.
var flagByCode = map[string]string{
	"EGY": ":flag-eg:",
	"RUS": ":flag-ru:",
	"KSA": ":flag-sa:",
	"URU": ":flag-uy:",
	"IRN": ":flag-ir:",
	"MAR": ":flag-ma:",
	"POR": ":flag-pt:",
	"ESP": ":flag-es:",
	"AUS": ":flag-au:",
	"DEN": ":flag-dk:",
	"FRA": ":flag-fr:",
	"PER": ":flag-pe:",
	"ARG": ":flag-ar:",
	"CRO": ":flag-hr:",
	"ISL": ":flag-is:",
	"NGA": ":flag-ng:",
	"BRA": ":flag-br:",
	"CRC": ":flag-cr:",
	"SRB": ":flag-rs:",
	"SUI": ":flag-ch:",
	"GER": ":flag-de:",
	"MEX": ":flag-mx:",
	"KOR": ":flag-kr:",
	"SWE": ":flag-se:",
	"BEL": ":flag-be:",
	"ENG": ":flag-england:",
	"PAN": ":flag-pa:",
	"TUN": ":flag-tn:",
	"COL": ":flag-co:",
	"JPN": ":flag-jp:",
	"POL": ":flag-pl:",
	"SEN": ":flag-sn:",
}

// Flag returns the emoji label for a team code, or the code itself when
// no mapping exists.
func Flag(code string) string {
	if flag, ok := flagByCode[code]; ok {
		return flag
	}
	return code
}

var scoreWords = []string{
	":zero:", ":one:", ":two:", ":three:", ":four:", ":five:",
	":six:", ":seven:", ":eight:", ":nine:", ":ten:",
}

// ScoreWord renders a goal count as an emoji word up to ten, then digits.
func ScoreWord(goals int) string {
	if goals >= 0 && goals < len(scoreWords) {
		return scoreWords[goals]
	}
	return strconv.Itoa(goals)
}
