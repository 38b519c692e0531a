package repl

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/danirb97/P4-Quiz/internal/banner"
	"github.com/danirb97/P4-Quiz/internal/quiz"
)

const helpText = `Commands:
  h|help        this command list
  list          list all quizzes
  show <id>     show a quiz with its answer
  add           add a new quiz
  delete <id>   delete a quiz
  edit <id>     edit a quiz's question and answer
  test <id>     answer a single quiz
  p|play        answer all quizzes in random order until you miss
  credits       who made this
  q|quit        leave`

const creditsText = `Quizzes — a tiny trivia trainer for your terminal.
Written by Dani R. Contributions welcome.`

func (r *REPL) help() {
	fmt.Fprintln(r.out, helpText)
}

func (r *REPL) credits() {
	fmt.Fprintln(r.out, creditsText)
}

func (r *REPL) list(ctx context.Context) {
	all, err := r.repo.FindAll(ctx)
	if err != nil {
		r.printError(err)
		return
	}
	if len(all) == 0 {
		fmt.Fprintln(r.out, "no quizzes yet — 'add' creates one")
		return
	}
	for _, q := range all {
		fmt.Fprintln(r.out, q)
	}
}

func (r *REPL) show(ctx context.Context, arg string) {
	id, err := ParseID(arg)
	if err != nil {
		r.printError(err)
		return
	}

	q, err := r.repo.FindByID(ctx, id)
	if err != nil {
		r.printError(err)
		return
	}
	fmt.Fprintf(r.out, "[%d] %s => %s\n", q.ID, q.Question, q.Answer)
}

func (r *REPL) add(ctx context.Context) {
	question, err := r.line.Ask("Question: ")
	if err != nil {
		r.printError(err)
		return
	}
	answer, err := r.line.Ask("Answer: ")
	if err != nil {
		r.printError(err)
		return
	}

	q := &quiz.Quiz{Question: question, Answer: answer}
	if err := r.repo.Create(ctx, q); err != nil {
		r.printError(err)
		return
	}
	fmt.Fprintf(r.out, "added [%d] %s => %s\n", q.ID, q.Question, q.Answer)
}

func (r *REPL) edit(ctx context.Context, arg string) {
	id, err := ParseID(arg)
	if err != nil {
		r.printError(err)
		return
	}

	q, err := r.repo.FindByID(ctx, id)
	if err != nil {
		r.printError(err)
		return
	}

	r.line.Prefill(q.Question)
	question, err := r.line.Ask("Question: ")
	if err != nil {
		r.printError(err)
		return
	}
	r.line.Prefill(q.Answer)
	answer, err := r.line.Ask("Answer: ")
	if err != nil {
		r.printError(err)
		return
	}

	q.Question = question
	q.Answer = answer
	if err := r.repo.Save(ctx, q); err != nil {
		r.printError(err)
		return
	}
	fmt.Fprintf(r.out, "updated [%d] %s => %s\n", q.ID, q.Question, q.Answer)
}

func (r *REPL) delete(ctx context.Context, arg string) {
	id, err := ParseID(arg)
	if err != nil {
		r.printError(err)
		return
	}

	deleted, err := r.repo.DeleteByID(ctx, id)
	if err != nil {
		r.printError(err)
		return
	}
	if deleted == 0 {
		fmt.Fprintf(r.out, "no quiz with id %d, nothing deleted\n", id)
		return
	}
	fmt.Fprintf(r.out, "deleted quiz %d\n", id)
}

func (r *REPL) test(ctx context.Context, arg string) {
	id, err := ParseID(arg)
	if err != nil {
		r.printError(err)
		return
	}

	q, err := r.repo.FindByID(ctx, id)
	if err != nil {
		r.printError(err)
		return
	}

	answer, err := r.line.Ask(q.Question + " ")
	if err != nil {
		r.printError(err)
		return
	}

	if q.Matches(answer) {
		fmt.Fprintln(r.out, color.GreenString("Correct!"))
		banner.Render(r.out, "Correct!")
		return
	}
	fmt.Fprintf(r.out, "%s The answer was: %s\n", color.RedString("Wrong!"), q.Answer)
	banner.Render(r.out, "Wrong!")
}

func (r *REPL) play(ctx context.Context) {
	all, err := r.repo.FindAll(ctx)
	if err != nil {
		r.log.Error("loading quizzes for play failed", "err", err)
		r.printError(err)
		return
	}
	NewSession(all, r.line, r.out, r.rng, r.log).Run()
}
