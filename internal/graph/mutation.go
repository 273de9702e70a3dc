package graph

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
	"github.com/kwhite/taskboard/internal/domain"
	"github.com/kwhite/taskboard/internal/service"
)

type signInPayload struct {
	Token  string
	Viewer *domain.User
}

func (b *builder) mutationType() *graphql.Object {
	createTaskInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateTaskInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"title":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"content":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"status":   &graphql.InputObjectFieldConfig{Type: b.taskStatusEnum},
			"size":     &graphql.InputObjectFieldConfig{Type: b.taskSizeEnum},
			"priority": &graphql.InputObjectFieldConfig{Type: b.taskPriorityEnum},
			"ownerId":  &graphql.InputObjectFieldConfig{Type: graphql.ID},
		},
	})

	updateTaskInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateTaskInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"title":    &graphql.InputObjectFieldConfig{Type: graphql.String},
			"content":  &graphql.InputObjectFieldConfig{Type: graphql.String},
			"status":   &graphql.InputObjectFieldConfig{Type: b.taskStatusEnum},
			"size":     &graphql.InputObjectFieldConfig{Type: b.taskSizeEnum},
			"priority": &graphql.InputObjectFieldConfig{Type: b.taskPriorityEnum},
			"ownerId":  &graphql.InputObjectFieldConfig{Type: graphql.ID},
		},
	})

	createCommentInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateCommentInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"content":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"authorId": &graphql.InputObjectFieldConfig{Type: graphql.ID},
			"taskId":   &graphql.InputObjectFieldConfig{Type: graphql.Int},
		},
	})

	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"signIn": &graphql.Field{
				Type:        graphql.NewNonNull(b.signInType),
				Description: "Sign in using an email and password.",
				Args: graphql.FieldConfigArgument{
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					result, err := b.services.Auth.SignIn(
						p.Context,
						p.Args["email"].(string),
						p.Args["password"].(string),
					)
					if err != nil {
						return nil, err
					}
					return &signInPayload{Token: result.Token, Viewer: result.User}, nil
				},
			},
			"createTask": &graphql.Field{
				Type:        graphql.NewNonNull(b.taskType),
				Description: "Create a new task.",
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createTaskInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					in := p.Args["input"].(map[string]interface{})

					input := service.CreateTaskInput{
						Title:   stringArg(in, "title"),
						Content: stringArg(in, "content"),
					}
					if v, ok := in["status"].(domain.TaskStatus); ok {
						input.Status = v
					}
					if v, ok := in["size"].(domain.TaskSize); ok {
						input.Size = v
					}
					if v, ok := in["priority"].(domain.TaskPriority); ok {
						input.Priority = v
					}
					if raw, ok := in["ownerId"]; ok {
						id, err := parseUserID(raw)
						if err != nil {
							return nil, err
						}
						input.OwnerID = &id
					}

					return b.services.Task.CreateTask(p.Context, input)
				},
			},
			"updateTask": &graphql.Field{
				Type:        graphql.NewNonNull(b.taskType),
				Description: "Update an existing task.",
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateTaskInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					in := p.Args["input"].(map[string]interface{})

					var input service.UpdateTaskInput
					if v, ok := in["title"].(string); ok {
						input.Title = &v
					}
					if v, ok := in["content"].(string); ok {
						input.Content = &v
					}
					if v, ok := in["status"].(domain.TaskStatus); ok {
						input.Status = &v
					}
					if v, ok := in["size"].(domain.TaskSize); ok {
						input.Size = &v
					}
					if v, ok := in["priority"].(domain.TaskPriority); ok {
						input.Priority = &v
					}
					if raw, ok := in["ownerId"]; ok {
						id, err := parseUserID(raw)
						if err != nil {
							return nil, err
						}
						input.OwnerID = &id
					}

					return b.services.Task.UpdateTask(p.Context, p.Args["id"].(int), input)
				},
			},
			"deleteTask": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.Boolean),
				Description: "Delete a task. Fails while other tasks depend on it.",
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := b.services.Task.DeleteTask(p.Context, p.Args["id"].(int)); err != nil {
						return nil, err
					}
					return true, nil
				},
			},
			"addTaskDependency": &graphql.Field{
				Type:        graphql.NewNonNull(b.taskType),
				Description: "Record that one task depends on another.",
				Args: graphql.FieldConfigArgument{
					"taskId":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"dependsOnId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return b.services.Task.AddDependency(
						p.Context, p.Args["taskId"].(int), p.Args["dependsOnId"].(int))
				},
			},
			"removeTaskDependency": &graphql.Field{
				Type:        graphql.NewNonNull(b.taskType),
				Description: "Remove a dependency edge between two tasks.",
				Args: graphql.FieldConfigArgument{
					"taskId":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"dependsOnId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return b.services.Task.RemoveDependency(
						p.Context, p.Args["taskId"].(int), p.Args["dependsOnId"].(int))
				},
			},
			"createComment": &graphql.Field{
				Type:        graphql.NewNonNull(b.commentType),
				Description: "Create a comment. The author defaults to the current viewer.",
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createCommentInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					in := p.Args["input"].(map[string]interface{})

					input := service.CreateCommentInput{
						Content: stringArg(in, "content"),
					}
					if raw, ok := in["authorId"]; ok {
						id, err := parseUserID(raw)
						if err != nil {
							return nil, err
						}
						input.AuthorID = id
					} else {
						input.AuthorID = domain.ViewerFromContext(p.Context).UserID
					}
					if v, ok := in["taskId"].(int); ok {
						input.TaskID = &v
					}

					return b.services.Comment.CreateComment(p.Context, input)
				},
			},
			"updateComment": &graphql.Field{
				Type:        graphql.NewNonNull(b.commentType),
				Description: "Replace a comment's content.",
				Args: graphql.FieldConfigArgument{
					"id":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"content": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return b.services.Comment.UpdateComment(
						p.Context, p.Args["id"].(int), p.Args["content"].(string))
				},
			},
			"deleteComment": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.Boolean),
				Description: "Delete a comment.",
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := b.services.Comment.DeleteComment(p.Context, p.Args["id"].(int)); err != nil {
						return nil, err
					}
					return true, nil
				},
			},
		},
	})
}

func stringArg(args map[string]interface{}, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

func parseUserID(raw interface{}) (uuid.UUID, error) {
	s, ok := raw.(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("invalid user id")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user id")
	}
	return id, nil
}
