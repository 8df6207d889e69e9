package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/sameersinha-collab/echoproj/pkg/gemini"
	"github.com/sameersinha-collab/echoproj/pkg/protocol"
	"github.com/sameersinha-collab/echoproj/pkg/story"
)

// modeSpec is the per-mode behavior table. Everything outside this struct
// is shared activation machinery: modes differ only in their prompts,
// their timeout thresholds, and their closing vocabulary.
type modeSpec struct {
	mode      Mode
	prompt    time.Duration // 0 disables the nudge stage
	terminate time.Duration
	nudge     string
	goodbye   string
	phrases   []string
	complete  protocol.MessageType // "" emits no terminal envelope
}

// activation bundles everything a mode session run needs: the resolved
// prompts, the config notification payload, and Q&A scoring state.
type activation struct {
	spec    modeSpec
	system  string
	opening string
	config  protocol.ConfigData
	qa      *story.QARun
}

func baseConfigData(mode Mode) protocol.ConfigData {
	return protocol.ConfigData{
		Mode:             string(mode),
		InputSampleRate:  gemini.InputSampleRate,
		OutputSampleRate: gemini.OutputSampleRate,
		Channels:         1,
		SampleWidth:      2,
	}
}

// buildActivation resolves the prompts and metadata for a live mode.
func (m *Manager) buildActivation(mode Mode) (*activation, error) {
	switch mode {
	case ModeChat:
		return m.buildChat(), nil
	case ModeQA:
		return m.buildQA()
	case ModeIntro:
		return m.buildIntro()
	case ModeStopped:
		return m.buildStopped()
	}
	return nil, fmt.Errorf("session: mode %q has no live activation", mode)
}

func (m *Manager) buildChat() *activation {
	p := m.params
	persona := m.deps.Agents.Agent(p.Agent)

	return &activation{
		spec: modeSpec{
			mode:      ModeChat,
			terminate: m.deps.Timeouts.Chat,
			goodbye: fmt.Sprintf(
				"The child has been quiet for a while. Say exactly: 'Bye bye %s! Talk to you soon!' and nothing else.",
				p.ChildName),
		},
		system: persona.SystemPrompt +
			fmt.Sprintf("\n\nThe child you are talking to is named %s.", p.ChildName),
		opening: fmt.Sprintf(
			"Greet %s warmly by name and ask how they are doing today.", p.ChildName),
		config: baseConfigData(ModeChat),
	}
}

func (m *Manager) buildQA() (*activation, error) {
	p := m.params
	st, err := m.deps.Stories.Get(p.StoryID)
	if err != nil {
		return nil, err
	}
	ch := st.Chapter(p.ChapterID)
	if ch == nil {
		return nil, fmt.Errorf("session: story %q has no chapter %q", p.StoryID, p.ChapterID)
	}

	run := story.NewQARun(ch, m.deps.Tuning.MaxQuestions)
	first := run.Current()
	if first == nil {
		return nil, fmt.Errorf("session: chapter %q has no questions", p.ChapterID)
	}

	var sb strings.Builder
	sb.WriteString(m.deps.Agents.Agent("story_qa").SystemPrompt)
	fmt.Fprintf(&sb, "\n\nCHILD NAME: %s\nSTORY: %s\nCHAPTER: %s\n\nCHAPTER SUMMARY:\n%s\n\nQUESTIONS (ask in this order, one at a time):\n",
		p.ChildName, st.Name, ch.Name, ch.Summary)
	for i := 0; i < run.Total(); i++ {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, ch.Questions[i].Text)
	}

	cfg := baseConfigData(ModeQA)
	cfg.StoryName = st.Name
	cfg.ChapterName = ch.Name
	cfg.TotalQuestions = run.Total()

	return &activation{
		spec: modeSpec{
			mode:      ModeQA,
			terminate: m.deps.Timeouts.QA,
			goodbye: fmt.Sprintf(
				"The child seems to be away. Say exactly: 'That was so much fun, %s! We'll finish the questions next time. Bye bye!' and nothing else.",
				p.ChildName),
			phrases:  m.deps.Tuning.ClosingPhrases[ModeQA],
			complete: protocol.TypeQAComplete,
		},
		system: sb.String(),
		opening: fmt.Sprintf(
			"Warmly greet %s, remind them this is about the chapter %q, and ask the first question: %q",
			p.ChildName, ch.Name, first.Text),
		config: cfg,
		qa:     run,
	}, nil
}

func (m *Manager) buildIntro() (*activation, error) {
	p := m.params
	st, err := m.deps.Stories.Get(p.StoryID)
	if err != nil {
		return nil, err
	}
	ch := st.Chapter(p.ChapterID)
	if ch == nil {
		return nil, fmt.Errorf("session: story %q has no chapter %q", p.StoryID, p.ChapterID)
	}
	persona := m.deps.Agents.Agent(p.Agent)

	cfg := baseConfigData(ModeIntro)
	cfg.StoryName = st.Name
	cfg.ChapterName = ch.Name

	return &activation{
		spec: modeSpec{
			mode:      ModeIntro,
			terminate: m.deps.Timeouts.Intro,
			goodbye:   "Say exactly: 'Let's get started. Here we go!' and nothing else.",
			phrases:   m.deps.Tuning.ClosingPhrases[ModeIntro],
			complete:  protocol.TypeIntroComplete,
		},
		system: persona.SystemPrompt + fmt.Sprintf(
			"\n\nThe child is named %s. You are about to start the chapter %q of the story %q.",
			p.ChildName, ch.Name, st.Name),
		opening: fmt.Sprintf(
			"As %s, greet %s and ask whether they want to listen to %q or do a fun activity first. "+
				"When they choose, respond with one excited sentence that ends with 'Here we go!'",
			persona.Name, p.ChildName, ch.Name),
		config: cfg,
	}, nil
}

func (m *Manager) buildStopped() (*activation, error) {
	p := m.params
	st, err := m.deps.Stories.Get(p.StoryID)
	if err != nil {
		return nil, err
	}
	ch := st.Chapter(p.ChapterID)
	if ch == nil {
		return nil, fmt.Errorf("session: story %q has no chapter %q", p.StoryID, p.ChapterID)
	}
	persona := m.deps.Agents.Agent(p.Agent)

	var context, goodbyeLine string
	if p.IsLastChapter {
		context = fmt.Sprintf(
			"The child just finished the whole story %q. Congratulate them, ask what they loved most, "+
				"and when the chat wraps up end with 'Bye for now!'", st.Name)
		goodbyeLine = fmt.Sprintf("Say exactly: 'Wonderful listening, %s! Bye for now!' and nothing else.", p.ChildName)
	} else {
		context = fmt.Sprintf(
			"The child paused the story %q during the chapter %q. Check in: ask how they are liking it "+
				"and encourage them to keep listening. When the chat wraps up end with 'See you when it's done!'",
			st.Name, ch.Name)
		goodbyeLine = fmt.Sprintf(
			"Say exactly: 'Okay %s, keep listening and enjoy the story. See you when it's done!' and nothing else.",
			p.ChildName)
	}

	cfg := baseConfigData(ModeStopped)
	cfg.StoryName = st.Name
	cfg.ChapterName = ch.Name

	return &activation{
		spec: modeSpec{
			mode:      ModeStopped,
			prompt:    m.deps.Timeouts.StoppedPrompt,
			terminate: m.deps.Timeouts.StoppedTerminate,
			nudge: fmt.Sprintf(
				"%s has been quiet. Gently ask if they are still there and invite them to share what they think of the story so far.",
				p.ChildName),
			goodbye:  goodbyeLine,
			phrases:  m.deps.Tuning.ClosingPhrases[ModeStopped],
			complete: protocol.TypeStoppedComplete,
		},
		system: persona.SystemPrompt +
			fmt.Sprintf("\n\nThe child is named %s. %s", p.ChildName, context),
		opening: "Start the check-in now with one or two warm sentences.",
		config:  cfg,
	}, nil
}
