package analytics

import "strings"

// StopwordSet is a set of lowercase words or phrases excluded from counting.
type StopwordSet map[string]struct{}

// Contains reports whether s (case-insensitive) is in the set.
func (s StopwordSet) Contains(word string) bool {
	_, ok := s[strings.ToLower(word)]
	return ok
}

func (s StopwordSet) add(words ...string) {
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			s[w] = struct{}{}
		}
	}
}

// BuildStopwords returns the union of the generic list, the list for lang
// and extra. LanguageAuto is treated as English here; resolve it with
// DetectLanguage first.
func BuildStopwords(lang Language, extra []string) StopwordSet {
	set := make(StopwordSet, len(genericStopwords)+len(englishStopwords)+len(extra))
	set.add(genericStopwords...)
	switch lang {
	case LanguageGerman:
		set.add(germanStopwords...)
	default:
		set.add(englishStopwords...)
	}
	set.add(extra...)
	return set
}

// DefaultExtraStopwords are the domain terms always excluded from diary comments.
var DefaultExtraStopwords = []string{"day", "much", "gone", "got"}

// genericStopwords is the word-cloud style list applied regardless of language.
var genericStopwords = strings.Fields(`
a about above after again against all also am an and any are aren't as at
be because been before being below between both but by
can cannot could couldn't com
did didn't do does doesn't doing don't down during
each else ever few for from further get
had hadn't has hasn't have haven't having he he'd he'll he's hence her here
here's hers herself him himself his how how's however http
i i'd i'll i'm i've if in into is isn't it it's its itself just k
let's like me more most mustn't my myself
no nor not of off on once only or other otherwise ought our ours ourselves
out over own r same shall shan't she she'd she'll she's should shouldn't
since so some such than that that's the their theirs them themselves then
there there's therefore these they they'd they'll they're they've this
those through to too under until up very was wasn't we we'd we'll we're
we've were weren't what what's when when's where where's which while who
who's whom why why's with won't would wouldn't www you you'd you'll
you're you've your yours yourself yourselves
`)

// englishStopwords is the English function-word list.
var englishStopwords = strings.Fields(`
i me my myself we our ours ourselves you your yours yourself yourselves he
him his himself she her hers herself it its itself they them their theirs
themselves what which who whom this that these those am is are was were be
been being have has had having do does did doing a an the and but if or
because as until while of at by for with about against between into through
during before after above below to from up down in out on off over under
again further then once here there when where why how all any both each few
more most other some such no nor not only own same so than too very s t can
will just don should now d ll m o re ve y ain aren couldn didn doesn hadn
hasn haven isn ma mightn mustn needn shan shouldn wasn weren won wouldn
`)

// germanStopwords is the German function-word list.
var germanStopwords = strings.Fields(`
aber alle allem allen aller alles als also am an ander andere anderem
anderen anderer anderes anderm andern anderr anders auch auf aus bei bin bis
bist da damit dann der den des dem die das dass daß derselbe derselben
denselben desselben demselben dieselbe dieselben dasselbe dazu dein deine
deinem deinen deiner deines denn derer dessen dich dir du dies diese diesem
diesen dieser dieses doch dort durch ein eine einem einen einer eines einig
einige einigem einigen einiger einiges einmal er ihn ihm es etwas euer eure
eurem euren eurer eures für gegen gewesen hab habe haben hat hatte hatten
hier hin hinter ich mich mir ihr ihre ihrem ihren ihrer ihres euch im in
indem ins ist jede jedem jeden jeder jedes jene jenem jenen jener jenes jetzt
kann kein keine keinem keinen keiner keines können könnte machen man manche
manchem manchen mancher manches mein meine meinem meinen meiner meines mit
muss musste nach nicht nichts noch nun nur ob oder ohne sehr sein seine
seinem seinen seiner seines selbst sich sie ihnen sind so solche solchem
solchen solcher solches soll sollte sondern sonst über um und uns unsere
unserem unseren unser unseres unter viel vom von vor während war waren warst
was weg weil weiter welche welchem welchen welcher welches wenn werde werden
wie wieder will wir wird wirst wo wollen wollte würde würden zu zum zur zwar
zwischen
`)
