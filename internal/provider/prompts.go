package provider

// Prompt templates for a future text-generation backend. Carried as
// data so a backend implementation only has to fill in transport.
var Prompts = map[string]string{
	"function_pointer": `生成一个 C 语言代码片段，包含函数指针的使用，以及对应的分析问答。

要求：
1. 代码要真实、有意义
2. 包含函数指针的定义、赋值、调用
3. 答案要详细解释函数指针指向谁

输出 JSON 格式：
{
  "code": "...",
  "question": "...",
  "answer": "..."
}`,

	"async_pattern": `生成一个 Linux 内核异步编程的代码片段，以及对应的分析问答。

异步模式可以是：workqueue, timer, tasklet, completion, waitqueue

要求：
1. 代码要符合内核编程规范
2. 展示完整的绑定和触发过程
3. 答案要解释执行流程和时间线

输出 JSON 格式：
{
  "code": "...",
  "pattern": "workqueue|timer|tasklet|...",
  "question": "...",
  "answer": "..."
}`,
}
