package naming

import "testing"

func TestFor(t *testing.T) {
	tests := []struct {
		input string
		want  Names
	}{
		{"post", Names{
			Camel: "post", Pascal: "Post", Snake: "post", Kebab: "post",
			PluralCamel: "posts", PluralPascal: "Posts",
			Table: "posts", Route: "posts",
			Human: "Post", HumanPlural: "Posts",
		}},
		{"blogPost", Names{
			Camel: "blogPost", Pascal: "BlogPost", Snake: "blog_post", Kebab: "blog-post",
			PluralCamel: "blogPosts", PluralPascal: "BlogPosts",
			Table: "blog_posts", Route: "blog-posts",
			Human: "Blog Post", HumanPlural: "Blog Posts",
		}},
		{"BlogPost", Names{
			Camel: "blogPost", Pascal: "BlogPost", Snake: "blog_post", Kebab: "blog-post",
			PluralCamel: "blogPosts", PluralPascal: "BlogPosts",
			Table: "blog_posts", Route: "blog-posts",
			Human: "Blog Post", HumanPlural: "Blog Posts",
		}},
		{"categories", Names{
			Camel: "category", Pascal: "Category", Snake: "category", Kebab: "category",
			PluralCamel: "categories", PluralPascal: "Categories",
			Table: "categories", Route: "categories",
			Human: "Category", HumanPlural: "Categories",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := For(tt.input)
			if got != tt.want {
				t.Errorf("For(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHuman(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"title", "Title"},
		{"publishedAt", "Published At"},
		{"status", "Status"},
	}

	for _, tt := range tests {
		if got := Human(tt.input); got != tt.want {
			t.Errorf("Human(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestColumnName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"title", "title"},
		{"userId", "user_id"},
		{"publishedAt", "published_at"},
	}

	for _, tt := range tests {
		if got := ColumnName(tt.input); got != tt.want {
			t.Errorf("ColumnName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestForeignKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"user", "user_id"},
		{"users", "user_id"},
		{"blogPost", "blog_post_id"},
	}

	for _, tt := range tests {
		if got := ForeignKey(tt.input); got != tt.want {
			t.Errorf("ForeignKey(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
